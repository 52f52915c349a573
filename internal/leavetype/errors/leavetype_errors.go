package leavetypeerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave type not found",
		http.StatusNotFound,
	)
	ErrLeaveTypeCodeExists = apperror.New(
		apperror.CodeConflict,
		"leave type code already exists",
		http.StatusConflict,
	)
	ErrInvalidLeaveTypeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave type id",
		http.StatusBadRequest,
	)
	ErrDeductRequiresBalance = apperror.New(
		apperror.CodeInvalidInput,
		"deducts_from_balance requires requires_balance",
		http.StatusBadRequest,
	)
)
