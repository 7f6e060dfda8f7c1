package productrequesterrors

import (
	"net/http"

	"sahl/internal/shared/apperror"
)

var (
	ErrProductRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"product request not found",
		http.StatusNotFound,
	)
	ErrInvalidProductRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid product request id",
		http.StatusBadRequest,
	)
	ErrInvalidBranchID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid branch id",
		http.StatusBadRequest,
	)
	ErrLineTotalMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"line_total must equal quantity times unit_price",
		http.StatusBadRequest,
	)
	ErrTotalMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"total_amount must equal the sum of line totals",
		http.StatusBadRequest,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"product request status cannot change from its current state",
		http.StatusBadRequest,
	)
	ErrReviewForbidden = apperror.New(
		apperror.CodeForbidden,
		"only administrators may review product requests",
		http.StatusForbidden,
	)
	ErrBranchMismatch = apperror.New(
		apperror.CodeForbidden,
		"product request belongs to another branch",
		http.StatusForbidden,
	)
)
