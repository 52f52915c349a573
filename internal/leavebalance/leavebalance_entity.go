package leavebalance

import (
	"time"

	"github.com/google/uuid"
)

type LeaveBalance struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balance_key"`
	LeaveTypeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balance_key"`
	Year        int       `gorm:"not null;uniqueIndex:uq_leave_balance_key"`
	TotalDays   int       `gorm:"not null"`
	UsedDays    int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// RemainingDays is derived on every read and never stored.
func (b LeaveBalance) RemainingDays() int {
	return b.TotalDays - b.UsedDays
}

// BalanceView is a ledger row joined with its leave type and employee names.
type BalanceView struct {
	LeaveBalance
	LeaveTypeCode string
	LeaveTypeName string
	EmployeeName  string
}
