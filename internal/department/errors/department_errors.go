package departmenterrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"department not found",
		http.StatusNotFound,
	)
	ErrDepartmentNameExists = apperror.New(
		apperror.CodeConflict,
		"department name already exists",
		http.StatusConflict,
	)
	ErrDepartmentCodeExists = apperror.New(
		apperror.CodeConflict,
		"department code already exists",
		http.StatusConflict,
	)
	ErrInvalidDepartmentID = apperror.InvalidField("department id")
	ErrInvalidManagerID    = apperror.InvalidField("manager_id")

	ErrSystemDepartment     = apperror.BusinessRule("system department cannot be deleted")
	ErrDepartmentHasMembers = apperror.BusinessRule("department still has active employees")
)
