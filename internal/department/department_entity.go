package department

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Department struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"size:255;not null;uniqueIndex:uq_departments_name"`
	Code        *string    `gorm:"size:50;uniqueIndex:uq_departments_code"`
	Description string     `gorm:"type:text"`
	ManagerID   *uuid.UUID `gorm:"type:uuid"`
	IsActive    bool       `gorm:"not null"`
	// IsSystem marks departments provisioned at startup; they cannot be deleted.
	IsSystem  bool           `gorm:"not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
