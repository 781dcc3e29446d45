package employees

import (
	"context"
)

// EmployeeService defines the operations exposed to the HTTP layer.
type EmployeeService interface {
	// Create registers a new employee.
	// It returns ErrDuplicateEmployeeID or ErrDuplicateEmail when the employee clashes with an existing one.
	Create(ctx context.Context, employeeID, fullName, email, department string) (*Summary, error)

	// List returns all employees matching the query together with their attendance totals.
	List(ctx context.Context, query *Query) ([]*Summary, error)

	// GetByEmployeeID returns a single employee with attendance totals or ErrEmployeeNotFound.
	GetByEmployeeID(ctx context.Context, employeeID string) (*Summary, error)

	// DeleteByEmployeeID removes the employee and every attendance record it owns.
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
}

// EmployeeRepository defines the interface for Employee-related persistence
type EmployeeRepository interface {
	Create(ctx context.Context, employee *Employee) error
	List(ctx context.Context, query *Query) ([]*Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	// DeleteByEmployeeID deletes the employee and its attendance records in one transaction.
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
	Count(ctx context.Context) (int64, error)
	CountByDepartment(ctx context.Context) ([]DepartmentHeadcount, error)
}
