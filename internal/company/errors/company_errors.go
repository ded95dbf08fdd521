package companyerrors

import (
	"net/http"

	"paydesk/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)

	ErrCompanyFetchFailed = apperror.New(
		apperror.CodeUpstreamFailure,
		"Could not load companies from the payroll service",
		http.StatusBadGateway,
	)
)
