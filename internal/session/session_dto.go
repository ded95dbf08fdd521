package session

import (
	"paydesk/internal/company"
)

// NetSalaryPlaceholder is shown in summary rows for employees whose payslip
// has not been computed under the current selection.
const NetSalaryPlaceholder = "—"

type SelectCompanyRequest struct {
	CompanyID string `json:"company_id" binding:"required"`
}

type SelectMonthRequest struct {
	Month string `json:"month" binding:"required"`
}

type SessionResponse struct {
	ID            string                `json:"id"`
	State         string                `json:"state"`
	CompanyID     string                `json:"company_id,omitempty"`
	CompanyName   string                `json:"company_name,omitempty"`
	Month         string                `json:"month,omitempty"`
	EmployeeCount int                   `json:"employee_count"`
	SheetColumns  []company.SheetColumn `json:"sheet_columns,omitempty"`
}

// EmployeeRowResponse is one tabular summary row: base salary always shown
// to 2 decimal places, net salary only when cached for the current epoch.
type EmployeeRowResponse struct {
	EmployeeID       string `json:"employee_id"`
	Name             string `json:"name"`
	Designation      string `json:"designation"`
	Department       string `json:"department"`
	BaseSalary       string `json:"base_salary"`
	CalculatedSalary string `json:"calculated_salary"`
}
