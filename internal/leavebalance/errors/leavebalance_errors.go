package leavebalanceerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrBalanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave balance not found",
		http.StatusNotFound,
	)
	ErrBalanceExists = apperror.New(
		apperror.CodeConflict,
		"leave balance already exists for this employee, leave type and year",
		http.StatusConflict,
	)
	ErrBalanceInUse = apperror.BusinessRule(
		"leave balance with used days cannot be deleted",
	)
	ErrTotalBelowUsed = apperror.BusinessRule(
		"total days cannot be lower than used days",
	)
	ErrInvalidBalanceID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave balance id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"invalid year",
		http.StatusBadRequest,
	)
)
