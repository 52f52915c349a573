package auth

import (
	"github.com/google/uuid"
)

// Account is the credential view of an employee row.
type Account struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName     string
	LastName      string
	Email         string
	Role          string
	PasswordHash  string
	IsActive      bool
	IsSystemAdmin bool
}

func (Account) TableName() string {
	return "employees"
}
