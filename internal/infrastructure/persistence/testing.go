//go:build integration
// +build integration

package persistence

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/Kartikpatidar0006/Staffy/internal/domain/attendance"
	"github.com/Kartikpatidar0006/Staffy/internal/domain/employees"
	"github.com/Kartikpatidar0006/Staffy/internal/pkg/config"
	"github.com/Kartikpatidar0006/Staffy/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Test constants
const (
	TestDepartmentEngineering = "Engineering"
	TestDepartmentSales       = "Sales"

	TestDateMonday  = "2025-03-10"
	TestDateTuesday = "2025-03-11"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB             *gorm.DB
	EmployeeRepo   employees.EmployeeRepository
	AttendanceRepo attendance.AttendanceRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	return newTestContext(t, settings, cleanupFunc)
}

// SetupTestFileDB initializes a file-backed SQLite database in a temporary
// directory, the way the service runs by default.
func SetupTestFileDB(t *testing.T) *TestContext {
	t.Helper()

	settings := config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  filepath.Join(t.TempDir(), "staffy.db"),
	}
	return newTestContext(t, settings, func() {})
}

func newTestContext(t *testing.T, settings config.DatabaseSettings, cleanupFunc func()) *TestContext {
	t.Helper()

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)

	employeeRepo, err := NewGormEmployeeRepository(db, logger)
	require.NoError(t, err, "Failed to create employee repository")

	attendanceRepo, err := NewGormAttendanceRepository(db, logger)
	require.NoError(t, err, "Failed to create attendance repository")

	return &TestContext{
		DB:             db,
		EmployeeRepo:   employeeRepo,
		AttendanceRepo: attendanceRepo,
	}
}

// CreateTestEmployee builds an employee whose email is derived from its id
func CreateTestEmployee(t *testing.T, employeeID, department string) *employees.Employee {
	t.Helper()

	return employees.NewEmployee(employeeID, "Employee "+employeeID, strings.ToLower(employeeID)+"@example.com", department)
}
