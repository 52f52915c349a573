package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending                     = "PENDING"
	StatusApprovedByDepartmentManager = "APPROVED_BY_DEPARTMENT_MANAGER"
	StatusRejectedByDepartmentManager = "REJECTED_BY_DEPARTMENT_MANAGER"
	StatusApprovedByHRManager         = "APPROVED_BY_HR_MANAGER"
	StatusRejectedByHRManager         = "REJECTED_BY_HR_MANAGER"
	StatusCancelled                   = "CANCELLED"
)

type LeaveRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_employee_dates"`
	LeaveTypeID uuid.UUID `gorm:"type:uuid;not null"`

	StartDate time.Time `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	TotalDays int       `gorm:"not null"`
	Reason    string    `gorm:"type:text"`
	Status    string    `gorm:"type:varchar(40);not null;index:idx_leave_requests_status"`

	DepartmentManagerID           *uuid.UUID `gorm:"type:uuid;column:department_manager_id"`
	HRManagerID                   *uuid.UUID `gorm:"type:uuid;column:hr_manager_id"`
	DepartmentManagerApprovalDate *time.Time `gorm:"column:department_manager_approval_date"`
	HRManagerApprovalDate         *time.Time `gorm:"column:hr_manager_approval_date"`
	DepartmentManagerComments     *string    `gorm:"type:varchar(500);column:department_manager_comments"`
	HRManagerComments             *string    `gorm:"type:varchar(500);column:hr_manager_comments"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LeaveRequestView is a request joined with the names shown in listings.
type LeaveRequestView struct {
	LeaveRequest
	EmployeeName  string
	LeaveTypeCode string
	LeaveTypeName string
}

// IsTerminal reports whether no further transition is possible from status.
func IsTerminal(status string) bool {
	switch status {
	case StatusApprovedByHRManager, StatusRejectedByDepartmentManager,
		StatusRejectedByHRManager, StatusCancelled:
		return true
	}
	return false
}

// isHRStage reports whether status is decided by the HR manager.
func isHRStage(status string) bool {
	return status == StatusApprovedByHRManager || status == StatusRejectedByHRManager
}

func isDepartmentStage(status string) bool {
	return status == StatusApprovedByDepartmentManager || status == StatusRejectedByDepartmentManager
}

// predecessorOf returns the only status a decision may be applied to.
func predecessorOf(target string) string {
	if isHRStage(target) {
		return StatusApprovedByDepartmentManager
	}
	return StatusPending
}

// cancellable lists the states an employee may withdraw from.
var cancellable = []string{StatusPending, StatusApprovedByDepartmentManager}

// inactive lists the states that no longer block an overlapping request.
var inactive = []string{StatusRejectedByDepartmentManager, StatusRejectedByHRManager, StatusCancelled}
