package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrUpstream = New(
		CodeUpstreamFailure,
		"The payroll service could not be reached",
		http.StatusBadGateway,
	)
)

// RequiredField reports a missing required field by its json name.
func RequiredField(field string) *AppError {
	e := New(CodeInvalidInput, fmt.Sprintf("%s is required", field), http.StatusBadRequest)
	e.Details = map[string]string{"field": field}
	return e
}

// InvalidField reports a field that failed validation, with an optional reason.
func InvalidField(field string, reason ...string) *AppError {
	msg := fmt.Sprintf("%s is invalid", field)
	if len(reason) > 0 && reason[0] != "" {
		msg = fmt.Sprintf("%s %s", field, reason[0])
	}
	e := New(CodeInvalidInput, msg, http.StatusBadRequest)
	e.Details = map[string]string{"field": field, "message": msg}
	return e
}
