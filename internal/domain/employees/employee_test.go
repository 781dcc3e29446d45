//go:build unit
// +build unit

package employees

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmployee_Normalizes(t *testing.T) {
	employee := NewEmployee("  EMP001 ", " Ada Lovelace ", " Ada@Example.COM ", " Engineering ")

	assert.NotEmpty(t, employee.ID)
	assert.Equal(t, "EMP001", employee.EmployeeID)
	assert.Equal(t, "Ada Lovelace", employee.FullName)
	assert.Equal(t, "ada@example.com", employee.Email)
	assert.Equal(t, "Engineering", employee.Department)
	assert.False(t, employee.DateTimeCreated.IsZero())
	require.NoError(t, employee.Validate())
}

func TestEmployee_Validate(t *testing.T) {
	valid := func() Employee {
		return Employee{
			ID:              uuid.NewString(),
			EmployeeID:      "EMP001",
			FullName:        "Ada Lovelace",
			Email:           "ada@example.com",
			Department:      "Engineering",
			DateTimeCreated: time.Now(),
		}
	}

	tests := []struct {
		name      string
		mutate    func(e *Employee)
		shouldErr bool
	}{
		{"valid", func(e *Employee) {}, false},
		{"missing id", func(e *Employee) { e.ID = "" }, true},
		{"non uuid id", func(e *Employee) { e.ID = "abc" }, true},
		{"missing employee id", func(e *Employee) { e.EmployeeID = "" }, true},
		{"missing full name", func(e *Employee) { e.FullName = "" }, true},
		{"invalid email", func(e *Employee) { e.Email = "not-an-email" }, true},
		{"missing department", func(e *Employee) { e.Department = "" }, true},
		{"missing creation time", func(e *Employee) { e.DateTimeCreated = time.Time{} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			employee := valid()
			tt.mutate(&employee)

			err := employee.Validate()
			if tt.shouldErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "validation failed")
			} else {
				require.NoError(t, err)
			}
		})
	}
}
