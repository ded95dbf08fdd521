package salary

import (
	"github.com/shopspring/decimal"
)

// ExportPlaceholder replaces the calculated salary in exports when no
// payslip has been computed for the employee under the current selection.
const ExportPlaceholder = "-"

// CalculateRequest carries the ephemeral per-calculation adjustment inputs.
// duty_done is bounded by the binding tags so an out-of-range value is
// rejected before any network call; the monetary fields are decimals and
// checked in the service.
type CalculateRequest struct {
	EmployeeID            string          `json:"employee_id" binding:"required"`
	DutyDone              int             `json:"duty_done" binding:"min=0,max=31"`
	Advance               decimal.Decimal `json:"advance"`
	Uniform               decimal.Decimal `json:"uniform"`
	Penalty               decimal.Decimal `json:"penalty"`
	OtherDeductions       decimal.Decimal `json:"other_deductions"`
	OtherDeductionsRemark string          `json:"other_deductions_remark"`
	Allowance             decimal.Decimal `json:"allowance"`
	AllowanceRemark       string          `json:"allowance_remark"`
}

// SheetCellRequest is one edited cell of the salary sheet; the raw value is
// kept as a string so coercion rules live server-side.
type SheetCellRequest struct {
	Column string `json:"column" binding:"required"`
	Value  string `json:"value"`
}

type SheetCellResponse struct {
	Column string   `json:"column"`
	Value  *float64 `json:"value"`
}

type CalculationResponse struct {
	EmployeeID string          `json:"employee_id"`
	Month      string          `json:"month"`
	NetSalary  string          `json:"net_salary"`
	Document   PayslipDocument `json:"document"`
}

// PayslipDocument is the structured document view: Earnings, Deductions and
// Net Salary, every monetary value with a currency prefix and exactly two
// decimal places.
type PayslipDocument struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Designation  string          `json:"designation"`
	CompanyName  string          `json:"company_name"`
	Month        string          `json:"month"`
	Earnings     DocumentSection `json:"earnings"`
	Deductions   DocumentSection `json:"deductions"`
	NetSalary    string          `json:"net_salary"`
}

type DocumentSection struct {
	Items []DocumentItem `json:"items"`
	Total string         `json:"total"`
}

type DocumentItem struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}
