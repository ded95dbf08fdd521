package sessionerrors

import (
	"net/http"

	"paydesk/internal/shared/apperror"
)

var (
	ErrSessionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Workflow session not found or expired",
		http.StatusNotFound,
	)

	ErrCompanyNotSelected = apperror.New(
		apperror.CodeMissingContext,
		"Select a company first",
		http.StatusConflict,
	)

	ErrMonthNotSelected = apperror.New(
		apperror.CodeMissingContext,
		"Select a company and month before calculating",
		http.StatusConflict,
	)

	ErrCalculationInFlight = apperror.New(
		apperror.CodeConflict,
		"A calculation for this employee is already in progress",
		http.StatusConflict,
	)

	ErrStaleSelection = apperror.New(
		apperror.CodeStaleSelection,
		"The selection changed while the calculation was running; result discarded",
		http.StatusConflict,
	)

	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"Month must be in MM-YYYY format",
		http.StatusBadRequest,
	)
)

// WrapEmployeeFetch marks an employee-snapshot fetch failure as an upstream
// problem so the selection transition is not applied.
func WrapEmployeeFetch(err error) error {
	return apperror.Wrap(
		err,
		apperror.CodeUpstreamFailure,
		"Could not load employees for the selected company",
		http.StatusBadGateway,
	)
}
