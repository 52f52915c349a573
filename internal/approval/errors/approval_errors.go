package approvalerrors

import (
	"go-leave/internal/shared/apperror"
)

var (
	ErrNoDepartmentManager = apperror.BusinessRule(
		"no manager found for the employee's department",
	)
	ErrAmbiguousDepartmentManager = apperror.BusinessRule(
		"department has more than one manager-class employee and no manager assigned",
	)
	ErrNoHRManager = apperror.BusinessRule(
		"no HR manager could be resolved",
	)
	ErrHRDepartmentNotFound = apperror.BusinessRule(
		"HR department is not configured",
	)
	ErrPersonNotFound = apperror.NotFound(
		"employee not found",
	)
	ErrNoDepartment = apperror.BusinessRule(
		"employee is not assigned to a department",
	)
)
