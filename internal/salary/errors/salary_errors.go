package salaryerrors

import (
	"net/http"

	"paydesk/internal/shared/apperror"
)

var (
	ErrEmployeeNotInCompany = apperror.New(
		apperror.CodeNotFound,
		"Employee is not part of the selected company",
		http.StatusNotFound,
	)

	ErrPayslipNotComputed = apperror.New(
		apperror.CodeNotFound,
		"No payslip has been calculated for this employee in the current selection",
		http.StatusNotFound,
	)

	ErrCalculationFailed = apperror.New(
		apperror.CodeUpstreamFailure,
		"The payroll service could not complete the calculation",
		http.StatusBadGateway,
	)
)

// RemoteValidation surfaces the calculation service's business-rule messages.
// Each message is an independent notification; the details list carries all
// of them so the client can show one per message.
func RemoteValidation(messages []string) error {
	e := apperror.New(
		apperror.CodeRemoteValidation,
		"The payroll service rejected the calculation",
		http.StatusUnprocessableEntity,
	)
	return e.WithDetails(map[string]any{"messages": messages})
}
