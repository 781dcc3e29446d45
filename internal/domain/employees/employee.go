package employees

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Employee entity
type Employee struct {
	ID              string    `validate:"required,uuid4"`
	EmployeeID      string    `validate:"required,min=1,max=50"`
	FullName        string    `validate:"required,min=1,max=255"`
	Email           string    `validate:"required,email,max=255"`
	Department      string    `validate:"required,min=1,max=100"`
	DateTimeCreated time.Time `validate:"required"`
}

// NewEmployee creates an Employee with a fresh internal ID. Text fields are
// trimmed and the email address is lower-cased so uniqueness checks are
// case-insensitive.
func NewEmployee(employeeID, fullName, email, department string) *Employee {
	return &Employee{
		ID:              uuid.NewString(),
		EmployeeID:      strings.TrimSpace(employeeID),
		FullName:        strings.TrimSpace(fullName),
		Email:           NormalizeEmail(email),
		Department:      strings.TrimSpace(department),
		DateTimeCreated: time.Now().UTC(),
	}
}

// NormalizeEmail returns the canonical form used for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate for validating Employee struct
func (e *Employee) Validate() error {
	err := validator.New().Struct(e)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// Summary is an Employee together with its attendance totals
type Summary struct {
	Employee
	TotalPresent int64
	TotalAbsent  int64
}

// DepartmentHeadcount is the number of employees in one department
type DepartmentHeadcount struct {
	Department string
	Employees  int64
}

// Query narrows down employee listings. The zero value lists everyone.
type Query struct {
	Department string
}
