package salary

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"paydesk/internal/employee"
	"paydesk/internal/payslip"

	salaryerrors "paydesk/internal/salary/errors"
)

var csvHeader = []string{"Employee ID", "Name", "Designation", "Base Salary", "Calculated Salary"}

// ExportCSV produces the row-oriented export: one row per employee, single
// employee when employeeID is set, otherwise the full filtered set.
func (s *service) ExportCSV(ctx context.Context, sessionID, employeeID, query string) (string, []byte, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return "", nil, err
	}

	var (
		list     []employee.Employee
		filename string
	)
	if employeeID != "" {
		emp, ok := sess.EmployeeByID(employeeID)
		if !ok {
			return "", nil, salaryerrors.ErrEmployeeNotInCompany
		}
		list = []employee.Employee{emp}
		filename = fmt.Sprintf("%s_%s_payslip.csv", emp.FirstName, emp.LastName)
	} else {
		list = sess.Employees(query)
		filename = "all_employees_payslip.csv"
	}

	data, err := buildPayslipCSV(list, sess.Cache())
	if err != nil {
		return "", nil, err
	}
	return filename, data, nil
}

func buildPayslipCSV(list []employee.Employee, cache *payslip.ResultCache) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, e := range list {
		calculated := ExportPlaceholder
		if slip, ok := cache.Get(e.EmployeeID); ok {
			calculated = slip.NetSalary.StringFixed(2)
		}
		row := []string{
			e.EmployeeID,
			e.FullName(),
			e.Designation,
			e.BaseSalary.StringFixed(2),
			calculated,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
