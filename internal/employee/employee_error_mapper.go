package employee

import (
	"errors"

	employeeerrors "go-leave/internal/employee/errors"
	"go-leave/internal/shared/pgerr"

	"gorm.io/gorm"
)

var uniqueConstraintErrors = map[string]error{
	"uq_employee_email":  employeeerrors.ErrEmployeeAlreadyExists,
	"uq_employee_number": employeeerrors.ErrEmployeeNumberAlreadyExists,
}

func mapRepositoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return employeeerrors.ErrEmployeeNotFound
	case pgerr.IsForeignKey(err):
		return employeeerrors.ErrInvalidReference
	}

	if name, ok := pgerr.Constraint(err, "uq_employee_email", "uq_employee_number"); ok {
		if mapped, known := uniqueConstraintErrors[name]; known {
			return mapped
		}
		return employeeerrors.ErrEmployeeAlreadyExists
	}

	return err
}
