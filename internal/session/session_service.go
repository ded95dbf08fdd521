package session

import (
	"context"

	"paydesk/internal/company"
	"paydesk/internal/employee"
	"paydesk/internal/payslip"
	"paydesk/internal/shared/contextutil"

	sessionerrors "paydesk/internal/session/errors"

	"go.uber.org/zap"
)

// EmployeeFetcher is the slice of the remote gateway this service needs.
type EmployeeFetcher interface {
	ActiveEmployees(ctx context.Context, companyID string) ([]employee.Employee, error)
}

type Service interface {
	Open(ctx context.Context) SessionResponse
	Close(ctx context.Context, id string) error
	SelectCompany(ctx context.Context, id string, req SelectCompanyRequest) (SessionResponse, error)
	SelectMonth(ctx context.Context, id string, req SelectMonthRequest) (SessionResponse, error)
	ClearCompany(ctx context.Context, id string) (SessionResponse, error)
	Employees(ctx context.Context, id, query string) ([]EmployeeRowResponse, error)
}

type service struct {
	store     *Store
	companies company.Service
	gateway   EmployeeFetcher
	logger    *zap.Logger
}

func NewService(store *Store, companies company.Service, gateway EmployeeFetcher, logger ...*zap.Logger) Service {
	l := zap.L().Named("session.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("session.service")
	}
	return &service{
		store:     store,
		companies: companies,
		gateway:   gateway,
		logger:    l,
	}
}

func (s *service) Open(ctx context.Context) SessionResponse {
	sess := s.store.Create()
	s.logger.Info("session opened",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("session_id", sess.ID),
	)
	return mapToSessionResponse(sess)
}

func (s *service) Close(ctx context.Context, id string) error {
	if _, err := s.store.Get(id); err != nil {
		return err
	}
	s.store.Delete(id)
	s.logger.Info("session closed", zap.String("session_id", id))
	return nil
}

func (s *service) SelectCompany(ctx context.Context, id string, req SelectCompanyRequest) (SessionResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	sess, err := s.store.Get(id)
	if err != nil {
		return SessionResponse{}, err
	}

	comp, err := s.companies.GetByID(ctx, req.CompanyID)
	if err != nil {
		s.logger.Error("select company lookup failed",
			zap.String("request_id", rid),
			zap.String("company_id", req.CompanyID),
			zap.Error(err),
		)
		return SessionResponse{}, err
	}

	employees, err := s.gateway.ActiveEmployees(ctx, comp.ID)
	if err != nil {
		s.logger.Error("select company employee fetch failed",
			zap.String("request_id", rid),
			zap.String("company_id", comp.ID),
			zap.Error(err),
		)
		return SessionResponse{}, sessionerrors.WrapEmployeeFetch(err)
	}

	sess.SelectCompany(comp, employees)
	s.logger.Info("company selected",
		zap.String("session_id", id),
		zap.String("company_id", comp.ID),
		zap.Int("employees", len(employees)),
	)

	return mapToSessionResponse(sess), nil
}

func (s *service) SelectMonth(ctx context.Context, id string, req SelectMonthRequest) (SessionResponse, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return SessionResponse{}, err
	}

	month, err := payslip.ParseMonth(req.Month)
	if err != nil {
		return SessionResponse{}, sessionerrors.ErrInvalidMonth
	}

	if err := sess.SelectMonth(month); err != nil {
		return SessionResponse{}, err
	}

	s.logger.Info("month selected",
		zap.String("session_id", id),
		zap.String("month", month.String()),
	)

	return mapToSessionResponse(sess), nil
}

func (s *service) ClearCompany(ctx context.Context, id string) (SessionResponse, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return SessionResponse{}, err
	}

	sess.ClearCompany()
	s.logger.Info("company deselected", zap.String("session_id", id))

	return mapToSessionResponse(sess), nil
}

func (s *service) Employees(ctx context.Context, id, query string) ([]EmployeeRowResponse, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}

	list := sess.Employees(query)
	rows := make([]EmployeeRowResponse, 0, len(list))
	for _, e := range list {
		rows = append(rows, mapToEmployeeRow(sess, e))
	}
	return rows, nil
}

func mapToEmployeeRow(sess *Session, e employee.Employee) EmployeeRowResponse {
	row := EmployeeRowResponse{
		EmployeeID:       e.EmployeeID,
		Name:             e.FullName(),
		Designation:      e.Designation,
		Department:       e.Department,
		BaseSalary:       e.BaseSalary.StringFixed(2),
		CalculatedSalary: NetSalaryPlaceholder,
	}
	if slip, ok := sess.Cache().Get(e.EmployeeID); ok {
		row.CalculatedSalary = slip.NetSalary.StringFixed(2)
	}
	return row
}

func mapToSessionResponse(sess *Session) SessionResponse {
	resp := SessionResponse{
		ID:    sess.ID,
		State: string(sess.State()),
	}

	if comp, ok := sess.Company(); ok {
		resp.CompanyID = comp.ID
		resp.CompanyName = comp.Name
		resp.SheetColumns = company.SheetColumns(comp)
	}
	if month, ok := sess.Month(); ok {
		resp.Month = month.String()
	}
	resp.EmployeeCount = len(sess.Employees(""))

	return resp
}
