package holiday

import (
	"time"

	"github.com/google/uuid"
)

type Holiday struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:200;not null"`
	Description string    `gorm:"type:text"`
	Date        time.Time `gorm:"type:date;not null"`
	Year        int       `gorm:"not null"`
	IsActive    bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}
