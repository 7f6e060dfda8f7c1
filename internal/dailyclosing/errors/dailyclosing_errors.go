package dailyclosingerrors

import (
	"net/http"

	"sahl/internal/shared/apperror"
)

var (
	ErrClosingNotFound = apperror.New(
		apperror.CodeNotFound,
		"daily closing not found",
		http.StatusNotFound,
	)
	ErrInvalidClosingID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid daily closing id",
		http.StatusBadRequest,
	)
	ErrInvalidBranchID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid branch id",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"date must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrDuplicateClosing = apperror.New(
		apperror.CodeConflict,
		"a closing already exists for this branch and date",
		http.StatusConflict,
	)
	ErrBranchMismatch = apperror.New(
		apperror.CodeForbidden,
		"daily closing belongs to another branch",
		http.StatusForbidden,
	)
)
