package salary

import (
	"context"
	"errors"
	"time"

	"paydesk/internal/employee"
	"paydesk/internal/events"
	"paydesk/internal/messaging/kafka"
	"paydesk/internal/payrollapi"
	"paydesk/internal/payslip"
	"paydesk/internal/session"
	"paydesk/internal/shared/apperror"
	"paydesk/internal/shared/contextutil"

	salaryerrors "paydesk/internal/salary/errors"
	sessionerrors "paydesk/internal/session/errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const currencyPrefix = "Rs. "

// Calculator is the slice of the remote gateway this service needs. The
// statutory arithmetic is the remote side's job; this service only builds
// the request, guards the preconditions and owns the result lifecycle.
type Calculator interface {
	Calculate(ctx context.Context, req payrollapi.CalculateRequest) (payslip.Payslip, error)
}

type Service interface {
	Calculate(ctx context.Context, sessionID string, req CalculateRequest) (CalculationResponse, error)
	Document(ctx context.Context, sessionID, employeeID string) (PayslipDocument, error)
	ExportCSV(ctx context.Context, sessionID, employeeID, query string) (string, []byte, error)
	ExportPDF(ctx context.Context, sessionID, employeeID string) (string, []byte, error)
	ExportBatchPDF(ctx context.Context, sessionID, query string) (string, []byte, error)
	ExportSheet(ctx context.Context, sessionID string) (string, []byte, error)
	CoerceSheetCell(ctx context.Context, sessionID string, req SheetCellRequest) (SheetCellResponse, error)
}

type service struct {
	store     *session.Store
	gateway   Calculator
	publisher *kafka.Publisher
	logger    *zap.Logger
}

func NewService(store *session.Store, gateway Calculator, logger ...*zap.Logger) Service {
	return NewServiceWithPublisher(store, gateway, nil, logger...)
}

func NewServiceWithPublisher(
	store *session.Store,
	gateway Calculator,
	publisher *kafka.Publisher,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	return &service{
		store:     store,
		gateway:   gateway,
		publisher: publisher,
		logger:    l,
	}
}

func (s *service) Calculate(
	ctx context.Context,
	sessionID string,
	req CalculateRequest,
) (CalculationResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	sess, err := s.store.Get(sessionID)
	if err != nil {
		return CalculationResponse{}, err
	}

	// Company and month must both be selected before anything goes over the
	// wire; their absence is a workflow error, not a field error.
	epoch, ok := sess.Epoch()
	if !ok {
		return CalculationResponse{}, sessionerrors.ErrMonthNotSelected
	}

	if err := validateAdjustments(req); err != nil {
		return CalculationResponse{}, err
	}

	emp, ok := sess.EmployeeByID(req.EmployeeID)
	if !ok {
		return CalculationResponse{}, salaryerrors.ErrEmployeeNotInCompany
	}

	// One calculation in flight per employee per session; a duplicate is
	// rejected instead of raced against the first.
	if err := sess.BeginCalculation(req.EmployeeID); err != nil {
		return CalculationResponse{}, err
	}
	defer sess.EndCalculation(req.EmployeeID)

	s.logger.Debug("calculation requested",
		zap.String("request_id", rid),
		zap.String("session_id", sessionID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("month", epoch.Month),
		zap.Int("duty_done", req.DutyDone),
	)

	slip, err := s.gateway.Calculate(ctx, payrollapi.CalculateRequest{
		EmployeeID:            req.EmployeeID,
		CompanyID:             epoch.CompanyID,
		Month:                 epoch.Month,
		DutyDone:              req.DutyDone,
		Advance:               req.Advance,
		Uniform:               req.Uniform,
		Penalty:               req.Penalty,
		OtherDeductions:       req.OtherDeductions,
		OtherDeductionsRemark: req.OtherDeductionsRemark,
		Allowance:             req.Allowance,
		AllowanceRemark:       req.AllowanceRemark,
	})
	if err != nil {
		var remoteErr *payrollapi.ValidationError
		if errors.As(err, &remoteErr) {
			s.logger.Warn("calculation rejected by payroll service",
				zap.String("request_id", rid),
				zap.String("employee_id", req.EmployeeID),
				zap.Strings("messages", remoteErr.Messages),
			)
			return CalculationResponse{}, salaryerrors.RemoteValidation(remoteErr.Messages)
		}

		s.logger.Error("calculation transport failure",
			zap.String("request_id", rid),
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return CalculationResponse{}, salaryerrors.ErrCalculationFailed
	}

	// Display-consistency guard only; the remote service owns the math.
	if err := slip.CheckConsistency(); err != nil {
		s.logger.Warn("payslip arithmetic inconsistent",
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
	}

	// The epoch check rejects late arrivals after a company/month change so
	// a previous selection's result can never surface under the new one.
	if err := sess.Cache().Put(epoch, slip); err != nil {
		s.logger.Warn("stale calculation discarded",
			zap.String("request_id", rid),
			zap.String("employee_id", req.EmployeeID),
			zap.String("month", epoch.Month),
		)
		return CalculationResponse{}, sessionerrors.ErrStaleSelection
	}

	comp, _ := sess.Company()
	s.publisher.Publish(
		events.PayslipCalculatedTopic,
		req.EmployeeID,
		"payslip_calculated",
		events.PayslipCalculatedEvent{
			EventType:  "payslip_calculated",
			RequestID:  rid,
			SessionID:  sessionID,
			EmployeeID: req.EmployeeID,
			CompanyID:  epoch.CompanyID,
			Month:      epoch.Month,
			NetSalary:  slip.NetSalary.StringFixed(2),
			OccurredAt: time.Now().UTC(),
		},
	)

	s.logger.Info("calculation success",
		zap.String("request_id", rid),
		zap.String("session_id", sessionID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("month", epoch.Month),
	)

	return CalculationResponse{
		EmployeeID: slip.EmployeeID,
		Month:      slip.Month,
		NetSalary:  slip.NetSalary.StringFixed(2),
		Document:   buildDocument(comp.Name, emp, slip),
	}, nil
}

func (s *service) Document(ctx context.Context, sessionID, employeeID string) (PayslipDocument, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return PayslipDocument{}, err
	}

	emp, ok := sess.EmployeeByID(employeeID)
	if !ok {
		return PayslipDocument{}, salaryerrors.ErrEmployeeNotInCompany
	}

	slip, ok := sess.Cache().Get(employeeID)
	if !ok {
		return PayslipDocument{}, salaryerrors.ErrPayslipNotComputed
	}

	comp, _ := sess.Company()
	return buildDocument(comp.Name, emp, slip), nil
}

func validateAdjustments(req CalculateRequest) error {
	if req.DutyDone < 0 || req.DutyDone > 31 {
		return apperror.InvalidField("duty_done", "must be between 0 and 31")
	}

	monetary := []struct {
		field string
		value decimal.Decimal
	}{
		{"advance", req.Advance},
		{"uniform", req.Uniform},
		{"penalty", req.Penalty},
		{"other_deductions", req.OtherDeductions},
		{"allowance", req.Allowance},
	}
	for _, m := range monetary {
		if m.value.IsNegative() {
			return apperror.InvalidField(m.field, "must not be negative")
		}
	}
	return nil
}

func money(d decimal.Decimal) string {
	return currencyPrefix + d.StringFixed(2)
}

func buildDocument(companyName string, emp employee.Employee, slip payslip.Payslip) PayslipDocument {
	return PayslipDocument{
		EmployeeID:   slip.EmployeeID,
		EmployeeName: emp.FullName(),
		Designation:  emp.Designation,
		CompanyName:  companyName,
		Month:        slip.Month,
		Earnings: DocumentSection{
			Items: []DocumentItem{
				{Label: "Basic Pay", Amount: money(slip.BasicPay)},
				{Label: "Bonus", Amount: money(slip.Bonus)},
				{Label: "Allowance", Amount: money(slip.Allowance)},
			},
			Total: money(slip.Gross),
		},
		Deductions: DocumentSection{
			Items: []DocumentItem{
				{Label: "PF", Amount: money(slip.PF)},
				{Label: "ESIC", Amount: money(slip.ESIC)},
				{Label: "Advance", Amount: money(slip.Advance)},
				{Label: "Uniform", Amount: money(slip.Uniform)},
				{Label: "Penalty", Amount: money(slip.Penalty)},
				{Label: "LWF", Amount: money(slip.LWF)},
				{Label: "Other Deductions", Amount: money(slip.OtherDeductions)},
			},
			Total: money(slip.TotalDeductions),
		},
		NetSalary: money(slip.NetSalary),
	}
}
