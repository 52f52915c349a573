package holidayerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrHolidayNotFound = apperror.New(
		apperror.CodeNotFound,
		"holiday not found",
		http.StatusNotFound,
	)
	ErrHolidayExists = apperror.New(
		apperror.CodeConflict,
		"a holiday with this name already exists on this date",
		http.StatusConflict,
	)
	ErrInvalidHolidayID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid holiday id",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"invalid year",
		http.StatusBadRequest,
	)
)
