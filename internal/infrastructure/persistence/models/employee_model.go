package models

import (
	"time"

	"github.com/Kartikpatidar0006/Staffy/internal/domain/employees"
)

// EmployeeModel is the GORM database model for employees
type EmployeeModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	EmployeeID      string    `gorm:"not null;uniqueIndex;type:varchar(50)"`
	FullName        string    `gorm:"not null;type:varchar(255)"`
	Email           string    `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Department      string    `gorm:"not null;index;type:varchar(100)"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToDomain converts GORM model to domain entity
func (m *EmployeeModel) ToDomain() *employees.Employee {
	return &employees.Employee{
		ID:              m.ID,
		EmployeeID:      m.EmployeeID,
		FullName:        m.FullName,
		Email:           m.Email,
		Department:      m.Department,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *EmployeeModel) FromDomain(e *employees.Employee) {
	m.ID = e.ID
	m.EmployeeID = e.EmployeeID
	m.FullName = e.FullName
	m.Email = e.Email
	m.Department = e.Department
	m.DateTimeCreated = e.DateTimeCreated
}
