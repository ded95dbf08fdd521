package payrollapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"paydesk/internal/employee"
	"paydesk/internal/payslip"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Client talks to the remote payroll service. The statutory computation rules
// live there; this side treats POST /salary/calculate as an oracle and only
// maps its three endpoints onto Go types. Failures are terminal per attempt,
// there is no retry or backoff anywhere in this workflow.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, logger ...*zap.Logger) *Client {
	l := zap.L().Named("payrollapi.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payrollapi.client")
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		logger:  l,
	}
}

// Company is the wire shape of GET /companies entries, templates embedded.
type Company struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	SalaryTemplates []SalaryTemplate `json:"salary_templates"`
}

// SalaryTemplate is an ordered list of optional pay-component fields.
type SalaryTemplate struct {
	Fields []TemplateField `json:"fields"`
}

type TemplateField struct {
	Name    string          `json:"name"`
	Value   decimal.Decimal `json:"value"`
	Enabled bool            `json:"enabled"`
}

// CalculateRequest is the body of POST /salary/calculate.
type CalculateRequest struct {
	EmployeeID            string          `json:"employeeId"`
	CompanyID             string          `json:"companyId"`
	Month                 string          `json:"month"`
	DutyDone              int             `json:"dutyDone"`
	Advance               decimal.Decimal `json:"advance"`
	Uniform               decimal.Decimal `json:"uniform"`
	Penalty               decimal.Decimal `json:"penalty"`
	OtherDeductions       decimal.Decimal `json:"otherDeductions"`
	OtherDeductionsRemark string          `json:"otherDeductionsRemark,omitempty"`
	Allowance             decimal.Decimal `json:"allowance"`
	AllowanceRemark       string          `json:"allowanceRemark,omitempty"`
}

// ValidationError carries the business-rule messages the remote service
// returns when it rejects a calculation (e.g. duty days exceeding the days
// in that calendar month). Each message is surfaced to the user separately.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "calculation rejected by payroll service"
	}
	return e.Messages[0]
}

type errorBody struct {
	Errors []string `json:"errors"`
}

func (c *Client) ListCompanies(ctx context.Context) ([]Company, error) {
	var out []Company
	if err := c.get(ctx, "/companies", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ActiveEmployees(ctx context.Context, companyID string) ([]employee.Employee, error) {
	var out []employee.Employee
	if err := c.get(ctx, "/companies/"+companyID+"/employees", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Calculate(ctx context.Context, req CalculateRequest) (payslip.Payslip, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return payslip.Payslip{}, err
	}

	httpReq, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/salary/calculate", bytes.NewReader(body),
	)
	if err != nil {
		return payslip.Payslip{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Error("calculate request failed", zap.Error(err))
		return payslip.Payslip{}, fmt.Errorf("payroll service unreachable: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var slip payslip.Payslip
		if err := json.NewDecoder(resp.Body).Decode(&slip); err != nil {
			return payslip.Payslip{}, fmt.Errorf("decode payslip: %w", err)
		}
		return slip, nil

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		var eb errorBody
		if err := json.NewDecoder(resp.Body).Decode(&eb); err != nil || len(eb.Errors) == 0 {
			return payslip.Payslip{}, &ValidationError{Messages: []string{"calculation rejected by payroll service"}}
		}
		return payslip.Payslip{}, &ValidationError{Messages: eb.Errors}

	default:
		c.logger.Error("calculate unexpected status",
			zap.Int("status", resp.StatusCode),
		)
		return payslip.Payslip{}, fmt.Errorf("payroll service returned status %d", resp.StatusCode)
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("request failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("payroll service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("payroll service returned status %d for %s", resp.StatusCode, path)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
