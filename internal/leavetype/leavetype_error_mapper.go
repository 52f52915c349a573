package leavetype

import (
	"errors"

	leavetypeerrors "go-leave/internal/leavetype/errors"
	"go-leave/internal/shared/pgerr"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leavetypeerrors.ErrLeaveTypeNotFound
	}

	if name, ok := pgerr.Constraint(err, "uq_leave_type_code"); ok && name == "uq_leave_type_code" {
		return leavetypeerrors.ErrLeaveTypeCodeExists
	}

	return err
}
