package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FirstName       string     `gorm:"size:100;not null"`
	LastName        string     `gorm:"size:100;not null"`
	Email           string     `gorm:"size:255;not null;uniqueIndex:uq_employee_email"`
	EmployeeNumber  string     `gorm:"size:50;not null;uniqueIndex:uq_employee_number"`
	Phone           string     `gorm:"size:50"`
	DepartmentID    *uuid.UUID `gorm:"type:uuid"`
	TitleID         *uuid.UUID `gorm:"type:uuid"`
	ManagerID       *uuid.UUID `gorm:"type:uuid"`
	WorksOnSaturday bool       `gorm:"not null"`
	IsActive        bool       `gorm:"not null"`
	IsSystemAdmin   bool       `gorm:"not null"`
	Role            string     `gorm:"size:30;not null"`
	PasswordHash    string     `gorm:"size:255" json:"-"`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime"`

	Department *EmployeeDepartment `gorm:"foreignKey:DepartmentID;references:ID"`
	Title      *EmployeeTitle      `gorm:"foreignKey:TitleID;references:ID"`
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// EmployeeDepartment is the minimal department projection preloaded with an employee.
type EmployeeDepartment struct {
	ID   uuid.UUID `gorm:"primaryKey"`
	Name string
}

func (EmployeeDepartment) TableName() string {
	return "departments"
}

type EmployeeTitle struct {
	ID   uuid.UUID `gorm:"primaryKey"`
	Name string
}

func (EmployeeTitle) TableName() string {
	return "titles"
}
