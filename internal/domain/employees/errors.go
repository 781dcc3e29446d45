package employees

import "errors"

var (
	// ErrEmployeeNotFound is returned when no employee carries the requested employee ID.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrDuplicateEmployeeID is returned when the employee ID is already taken.
	ErrDuplicateEmployeeID = errors.New("employee ID already exists")

	// ErrDuplicateEmail is returned when another employee already uses the email address.
	ErrDuplicateEmail = errors.New("employee email already exists")
)
