package department

import (
	"errors"

	departmenterrors "go-leave/internal/department/errors"
	"go-leave/internal/shared/pgerr"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return departmenterrors.ErrDepartmentNotFound
	}

	if name, ok := pgerr.Constraint(err, "uq_departments_code", "uq_departments_name"); ok {
		if name == "uq_departments_code" {
			return departmenterrors.ErrDepartmentCodeExists
		}
		return departmenterrors.ErrDepartmentNameExists
	}

	return err
}
