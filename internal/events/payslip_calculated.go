package events

import "time"

const PayslipCalculatedTopic = "hr.salary.payslip.calculated.v1"

// PayslipCalculatedEvent is published after a calculation result has been
// accepted into the session cache. Consumers use it for audit trails; the
// workflow itself never reads it back.
type PayslipCalculatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id"`
	SessionID  string    `json:"session_id"`
	EmployeeID string    `json:"employee_id"`
	CompanyID  string    `json:"company_id"`
	Month      string    `json:"month"`
	NetSalary  string    `json:"net_salary"`
	OccurredAt time.Time `json:"occurred_at"`
}
