package leavetype

import (
	"time"

	"github.com/google/uuid"
)

const (
	CodeAnnual = "ANNUAL"
	CodeUnpaid = "UNPAID"
)

type LeaveType struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code               string    `gorm:"size:30;not null;uniqueIndex:uq_leave_type_code"`
	Name               string    `gorm:"size:100;not null"`
	Description        string    `gorm:"type:text"`
	MaxDaysPerYear     int       `gorm:"not null"`
	RequiresApproval   bool      `gorm:"not null"`
	IsPaid             bool      `gorm:"not null"`
	RequiresBalance    bool      `gorm:"not null"`
	DeductsFromBalance bool      `gorm:"not null"`
	IsActive           bool      `gorm:"not null"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}
