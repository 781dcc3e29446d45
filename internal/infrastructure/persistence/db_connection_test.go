//go:build unit
// +build unit

package persistence

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/Kartikpatidar0006/Staffy/internal/infrastructure/persistence/models"
	"github.com/Kartikpatidar0006/Staffy/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNewDBConnection_UnsupportedType(t *testing.T) {
	_, err := NewDBConnection(config.DatabaseSettings{Type: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database type")
}

func TestNewDBConnection_SQLiteMemorySingleConnection(t *testing.T) {
	db, err := NewDBConnection(config.DatabaseSettings{Type: config.SqliteDbType})
	require.NoError(t, err)
	t.Cleanup(func() { _ = CloseDB(db) })

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)

	require.NoError(t, Migrate(db))
	assert.True(t, db.Migrator().HasTable("employees"))
	assert.True(t, db.Migrator().HasTable("attendance_records"))
}

func TestIsSQLiteMemory(t *testing.T) {
	assert.True(t, isSQLiteMemory(":memory:"))
	assert.True(t, isSQLiteMemory("file:staffy?mode=memory&cache=shared"))
	assert.False(t, isSQLiteMemory("staffy.db"))
}

func TestNewDBConnection_SQLiteFileSingleConnection(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "staffy.db")
	db, err := NewDBConnection(config.DatabaseSettings{Type: config.SqliteDbType, DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { _ = CloseDB(db) })

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, ":memory:", sqliteDSN(""))
	assert.Equal(t, ":memory:", sqliteDSN(":memory:"))
	assert.Equal(t, "staffy.db?_busy_timeout=5000", sqliteDSN("staffy.db"))
	assert.Equal(t, "file:staffy.db?cache=shared&_busy_timeout=5000", sqliteDSN("file:staffy.db?cache=shared"))
	assert.Equal(t, "staffy.db?_busy_timeout=100", sqliteDSN("staffy.db?_busy_timeout=100"))
}

type recordingLogWriter struct {
	lines []string
}

func (w *recordingLogWriter) Printf(format string, args ...interface{}) {
	w.lines = append(w.lines, fmt.Sprintf(format, args...))
}

func TestGormConfig_DoesNotWriteOwnLogs(t *testing.T) {
	recorder := &recordingLogWriter{}
	previous := gormLogWriter
	gormLogWriter = recorder
	t.Cleanup(func() { gormLogWriter = previous })

	db, err := NewDBConnection(config.DatabaseSettings{Type: config.SqliteDbType})
	require.NoError(t, err)
	t.Cleanup(func() { _ = CloseDB(db) })
	require.NoError(t, Migrate(db))

	var model models.EmployeeModel
	err = db.Where("employee_id = ?", "MISSING").First(&model).Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.Empty(t, recorder.lines)
}
