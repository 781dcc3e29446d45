//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Kartikpatidar0006/Staffy/internal/domain/attendance"
	"github.com/Kartikpatidar0006/Staffy/internal/domain/employees"
	"github.com/Kartikpatidar0006/Staffy/internal/pkg/metrics"
	"github.com/Kartikpatidar0006/Staffy/internal/pkg/testutil"

	prom "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEmployeeService_Create_ChecksUniquenessFirst(t *testing.T) {
	employeeRepo := new(MockEmployeeRepository)
	attendanceRepo := new(MockAttendanceRepository)
	service, err := NewEmployeeService(employeeRepo, attendanceRepo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	existing := employees.NewEmployee("EMP001", "Ada", "ada@example.com", "Engineering")
	employeeRepo.On("GetByEmployeeID", mock.Anything, "EMP001").Return(existing, nil)

	_, err = service.Create(context.Background(), "EMP001", "Ada", "ada@example.com", "Engineering")
	assert.ErrorIs(t, err, employees.ErrDuplicateEmployeeID)
	employeeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEmployeeService_Create_IncrementsMetric(t *testing.T) {
	employeeRepo := new(MockEmployeeRepository)
	attendanceRepo := new(MockAttendanceRepository)
	service, err := NewEmployeeService(employeeRepo, attendanceRepo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	employeeRepo.On("GetByEmployeeID", mock.Anything, "EMP001").Return(nil, employees.ErrEmployeeNotFound)
	employeeRepo.On("GetByEmail", mock.Anything, "ada@example.com").Return(nil, employees.ErrEmployeeNotFound)
	employeeRepo.On("Create", mock.Anything, mock.AnythingOfType("*employees.Employee")).Return(nil)

	before := prom.ToFloat64(metrics.EmployeesCreated)
	summary, err := service.Create(context.Background(), "EMP001", "Ada", "ADA@example.com", "Engineering")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", summary.Email)
	assert.Equal(t, before+1, prom.ToFloat64(metrics.EmployeesCreated))
	employeeRepo.AssertExpectations(t)
}

func TestEmployeeService_Create_LookupFailure(t *testing.T) {
	employeeRepo := new(MockEmployeeRepository)
	service, err := NewEmployeeService(employeeRepo, new(MockAttendanceRepository), testutil.SetupTestLogger(t))
	require.NoError(t, err)

	dbErr := errors.New("database is locked")
	employeeRepo.On("GetByEmployeeID", mock.Anything, "EMP001").Return(nil, dbErr)

	_, err = service.Create(context.Background(), "EMP001", "Ada", "ada@example.com", "Engineering")
	assert.ErrorIs(t, err, dbErr)
}

func TestAttendanceService_Mark_Created(t *testing.T) {
	employeeRepo := new(MockEmployeeRepository)
	attendanceRepo := new(MockAttendanceRepository)
	service, err := NewAttendanceService(employeeRepo, attendanceRepo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	employee := employees.NewEmployee("EMP001", "Ada Lovelace", "ada@example.com", "Engineering")
	employeeRepo.On("GetByEmployeeID", mock.Anything, "EMP001").Return(employee, nil)
	attendanceRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*attendance.Record")).Return(true, nil)

	view, created, err := service.Mark(context.Background(), "EMP001", "2025-03-14", attendance.StatusPresent)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Ada Lovelace", view.EmployeeName)
	assert.Equal(t, "2025-03-14", view.Date)
}

func TestAttendanceService_Mark_InvalidStatus(t *testing.T) {
	employeeRepo := new(MockEmployeeRepository)
	attendanceRepo := new(MockAttendanceRepository)
	service, err := NewAttendanceService(employeeRepo, attendanceRepo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	employee := employees.NewEmployee("EMP001", "Ada Lovelace", "ada@example.com", "Engineering")
	employeeRepo.On("GetByEmployeeID", mock.Anything, "EMP001").Return(employee, nil)

	_, _, err = service.Mark(context.Background(), "EMP001", "2025-03-14", "Late")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation error")
	attendanceRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestDashboardService_UsesClock(t *testing.T) {
	employeeRepo := new(MockEmployeeRepository)
	attendanceRepo := new(MockAttendanceRepository)
	clock := func() time.Time { return time.Date(2025, 3, 14, 23, 0, 0, 0, time.Local) }

	service, err := NewDashboardService(employeeRepo, attendanceRepo, clock, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	employeeRepo.On("Count", mock.Anything).Return(int64(3), nil)
	employeeRepo.On("CountByDepartment", mock.Anything).Return([]employees.DepartmentHeadcount{
		{Department: "Engineering", Employees: 3},
	}, nil)
	attendanceRepo.On("CountByDate", mock.Anything, "2025-03-14").Return(attendance.StatusCounts{Present: 2, Absent: 1}, nil)

	summary, err := service.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2025-03-14", summary.Date)
	assert.Equal(t, int64(3), summary.TotalEmployees)
	assert.Equal(t, int64(2), summary.TotalPresentToday)
	assert.Equal(t, int64(1), summary.TotalAbsentToday)
	assert.Equal(t, 1, summary.DepartmentCount)
}

func TestDashboardService_PropagatesErrors(t *testing.T) {
	employeeRepo := new(MockEmployeeRepository)
	service, err := NewDashboardService(employeeRepo, new(MockAttendanceRepository), nil, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	dbErr := errors.New("no such table: employees")
	employeeRepo.On("Count", mock.Anything).Return(int64(0), dbErr)

	_, err = service.Summary(context.Background())
	assert.ErrorIs(t, err, dbErr)
}
