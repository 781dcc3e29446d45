package attendance

import (
	"context"
)

// AttendanceService defines the operations exposed to the HTTP layer.
type AttendanceService interface {
	// Mark records the status of an employee on a date. An existing record for
	// the same employee and date is updated in place; created reports whether a
	// new record was inserted.
	Mark(ctx context.Context, employeeID, date, status string) (record *RecordView, created bool, err error)

	// ListByEmployee returns the employee's records, newest first. A non-empty
	// date restricts the result to that day.
	ListByEmployee(ctx context.Context, employeeID, date string) ([]*RecordView, error)

	// ListByDate returns every record of the given day.
	ListByDate(ctx context.Context, date string) ([]*RecordView, error)
}

// AttendanceRepository defines the interface for attendance persistence
type AttendanceRepository interface {
	// Upsert inserts the record or, when one already exists for the same
	// employee and date, overwrites its status. The stored record is written
	// back into record.
	Upsert(ctx context.Context, record *Record) (created bool, err error)
	List(ctx context.Context, query *Query) ([]*RecordView, error)
	CountByEmployee(ctx context.Context) (map[string]StatusCounts, error)
	CountByEmployeeID(ctx context.Context, employeeID string) (StatusCounts, error)
	CountByDate(ctx context.Context, date string) (StatusCounts, error)
}
