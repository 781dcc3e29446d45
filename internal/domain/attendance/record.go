package attendance

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DateLayout is the calendar date format used on the wire and in storage.
const DateLayout = "2006-01-02"

// Attendance statuses
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// Record entity. There is at most one record per employee and date.
type Record struct {
	ID              string    `validate:"required,uuid4"`
	EmployeeID      string    `validate:"required,min=1,max=50"`
	Date            string    `validate:"required,datetime=2006-01-02"`
	Status          string    `validate:"required,oneof=Present Absent"`
	DateTimeCreated time.Time `validate:"required"`
	DateTimeUpdated time.Time `validate:"required"`
}

// NewRecord creates a Record with a fresh ID.
func NewRecord(employeeID, date, status string) *Record {
	now := time.Now().UTC()
	return &Record{
		ID:              uuid.NewString(),
		EmployeeID:      strings.TrimSpace(employeeID),
		Date:            strings.TrimSpace(date),
		Status:          status,
		DateTimeCreated: now,
		DateTimeUpdated: now,
	}
}

// Validate for validating Record struct
func (r *Record) Validate() error {
	err := validator.New().Struct(r)
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

// RecordView is a Record joined with the name of the employee it belongs to.
type RecordView struct {
	Record
	EmployeeName string
}

// StatusCounts tallies records by status
type StatusCounts struct {
	Present int64
	Absent  int64
}

// Query filters attendance listings. Empty fields are ignored.
type Query struct {
	EmployeeID string
	Date       string
}

// Today returns the current local calendar date in DateLayout.
func Today(now func() time.Time) string {
	return now().Format(DateLayout)
}
