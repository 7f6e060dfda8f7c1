package revenueerrors

import (
	"net/http"

	"sahl/internal/shared/apperror"
)

var (
	ErrRevenueNotFound = apperror.New(
		apperror.CodeNotFound,
		"revenue not found",
		http.StatusNotFound,
	)
	ErrInvalidRevenueID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid revenue id",
		http.StatusBadRequest,
	)
	ErrInvalidBranchID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid branch id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id in contributions",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"date must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrContributionSumMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"employee contributions must sum to the total after discount",
		http.StatusBadRequest,
	)
	ErrMismatchReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"mismatch_reason is required when cash plus network does not equal the total",
		http.StatusBadRequest,
	)
	ErrBranchMismatch = apperror.New(
		apperror.CodeForbidden,
		"revenue belongs to another branch",
		http.StatusForbidden,
	)
)
