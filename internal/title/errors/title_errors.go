package titleerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrTitleNotFound = apperror.New(
		apperror.CodeNotFound,
		"title not found",
		http.StatusNotFound,
	)
	ErrTitleNameExists = apperror.New(
		apperror.CodeConflict,
		"title name already exists",
		http.StatusConflict,
	)
	ErrInvalidTitleID = apperror.InvalidField("title id")
	ErrTitleInUse     = apperror.BusinessRule("title is still assigned to employees")
)
