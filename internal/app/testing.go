//go:build integration
// +build integration

package app

import (
	"testing"
	"time"

	"github.com/Kartikpatidar0006/Staffy/internal/domain/attendance"
	"github.com/Kartikpatidar0006/Staffy/internal/domain/dashboard"
	"github.com/Kartikpatidar0006/Staffy/internal/domain/employees"
	"github.com/Kartikpatidar0006/Staffy/internal/infrastructure/persistence"
	"github.com/Kartikpatidar0006/Staffy/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestToday is the fixed date the dashboard clock reports in tests
const TestToday = "2025-03-14"

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	EmployeeService   employees.EmployeeService
	AttendanceService attendance.AttendanceService
	DashboardService  dashboard.DashboardService

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	employeeService, err := NewEmployeeService(dbContext.EmployeeRepo, dbContext.AttendanceRepo, logger)
	require.NoError(t, err, "Failed to create employee service")

	attendanceService, err := NewAttendanceService(dbContext.EmployeeRepo, dbContext.AttendanceRepo, logger)
	require.NoError(t, err, "Failed to create attendance service")

	clock := func() time.Time {
		today, _ := time.Parse(attendance.DateLayout, TestToday)
		return today.Add(9 * time.Hour)
	}
	dashboardService, err := NewDashboardService(dbContext.EmployeeRepo, dbContext.AttendanceRepo, clock, logger)
	require.NoError(t, err, "Failed to create dashboard service")

	return &TestServices{
		EmployeeService:   employeeService,
		AttendanceService: attendanceService,
		DashboardService:  dashboardService,
		DBContext:         dbContext,
	}
}
