package bonuserrors

import (
	"net/http"

	"sahl/internal/shared/apperror"
)

var (
	ErrRuleNotFound = apperror.New(
		apperror.CodeNotFound,
		"bonus rule not found",
		http.StatusNotFound,
	)
	ErrInvalidRuleID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid bonus rule id",
		http.StatusBadRequest,
	)
	ErrInvalidBranchID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid branch id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"year and month must identify a valid calendar month",
		http.StatusBadRequest,
	)
	ErrDuplicateThreshold = apperror.New(
		apperror.CodeConflict,
		"a rule with this threshold already exists for the branch",
		http.StatusConflict,
	)
)
