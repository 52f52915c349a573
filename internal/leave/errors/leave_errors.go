package leaveerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave request id",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveTypeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave type id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrNoWorkingDays = apperror.New(
		apperror.CodeInvalidInput,
		"requested period contains no working days",
		http.StatusBadRequest,
	)
	ErrInvalidTargetStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be an approval or rejection decision",
		http.StatusBadRequest,
	)
	ErrStageMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"status does not belong to the requested approval stage",
		http.StatusBadRequest,
	)

	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave type not found",
		http.StatusNotFound,
	)

	ErrInvalidStatusTransition = apperror.StateConflict("invalid leave status transition")
	ErrApprovedLeaveImmutable  = apperror.StateConflict("leave request approved by hr manager cannot be deleted")

	ErrNotAssignedApprover = apperror.Forbidden("actor is not the assigned department manager for this request")
	ErrNotHRManager        = apperror.Forbidden("actor is not the hr manager")
	ErrNotOwner            = apperror.Forbidden("only the requesting employee can cancel this leave request")

	ErrEmployeeInactive    = apperror.BusinessRule("employee is not active")
	ErrLeaveTypeInactive   = apperror.BusinessRule("leave type is not active")
	ErrLeaveOverlap        = apperror.BusinessRule("leave request overlaps an existing request")
	ErrInsufficientBalance = apperror.BusinessRule("insufficient leave balance")
	ErrUnpaidLeaveBlocked  = apperror.BusinessRule("unpaid leave requires annual leave balance to be used up first")
)
