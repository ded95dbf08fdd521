package employee

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Employee is a read-only projection owned by the remote payroll service.
// The workflow only holds a transient snapshot for the active company.
type Employee struct {
	EmployeeID  string          `json:"employee_id"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Designation string          `json:"designation"`
	Department  string          `json:"department"`
	BaseSalary  decimal.Decimal `json:"base_salary"`
}

func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// Filter narrows an in-memory snapshot by a case-insensitive substring match
// against the concatenated first and last name. It never refetches.
func Filter(list []Employee, query string) []Employee {
	if query == "" {
		return list
	}

	q := strings.ToLower(query)
	matched := make([]Employee, 0, len(list))
	for _, e := range list {
		if strings.Contains(strings.ToLower(e.FullName()), q) {
			matched = append(matched, e)
		}
	}
	return matched
}
