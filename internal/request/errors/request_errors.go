package requesterrors

import (
	"net/http"

	"sahl/internal/shared/apperror"
)

var (
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"request not found",
		http.StatusNotFound,
	)
	ErrInvalidRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid request id",
		http.StatusBadRequest,
	)
	ErrInvalidBranchID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid branch id",
		http.StatusBadRequest,
	)
	ErrInvalidType = apperror.New(
		apperror.CodeInvalidInput,
		"unknown request type",
		http.StatusBadRequest,
	)
	ErrMissingTypeFields = apperror.New(
		apperror.CodeInvalidInput,
		"missing fields for this request type",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"end date must not be before start date",
		http.StatusBadRequest,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"request status cannot change from its current state",
		http.StatusBadRequest,
	)
	ErrReviewForbidden = apperror.New(
		apperror.CodeForbidden,
		"only administrators may review requests",
		http.StatusForbidden,
	)
	ErrBranchMismatch = apperror.New(
		apperror.CodeForbidden,
		"request belongs to another branch",
		http.StatusForbidden,
	)
)
