package persistence

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"

	"github.com/Kartikpatidar0006/Staffy/internal/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	sqliteMemoryDSN   = ":memory:"
	sqliteBusyTimeout = "_busy_timeout=5000"
)

// gormLogWriter receives gorm's own log output. Query errors are returned to
// the caller and logged there, so gorm itself stays silent.
var gormLogWriter gormlogger.Writer = log.New(os.Stdout, "\r\n", log.LstdFlags)

// NewDBConnection creates a database connection based on settings
// Supports both production and test environments
func NewDBConnection(settings config.DatabaseSettings) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	switch settings.Type {
	case config.PostgresDbType:
		db, err = connectPostgres(settings)
	case config.SqliteDbType:
		db, err = connectSQLite(settings)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", settings.Type)
	}

	if err != nil {
		return nil, err
	}

	return db, nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(gormLogWriter, gormlogger.Config{
			LogLevel:                  gormlogger.Silent,
			IgnoreRecordNotFoundError: true,
		}),
	}
}

// connectPostgres establishes PostgreSQL connection with optional database creation
func connectPostgres(settings config.DatabaseSettings) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(settings.DSN), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	if settings.Name != "" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
		}

		// Fails when the database already exists, which is fine.
		_, _ = sqlDB.Exec(fmt.Sprintf("CREATE DATABASE %s", quoteIdentifier(settings.Name)))

		if err := sqlDB.Close(); err != nil {
			return nil, fmt.Errorf("failed to close initial DB connection: %w", err)
		}

		db, err = gorm.Open(postgres.Open(withDatabaseName(settings.DSN, settings.Name)), gormConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database '%s': %w", settings.Name, err)
		}
	}

	return db, nil
}

// withDatabaseName points a DSN at another database. Both URL
// (postgres://...) and keyword/value DSNs are supported.
func withDatabaseName(dsn, name string) string {
	if strings.Contains(dsn, "://") {
		u, err := url.Parse(dsn)
		if err == nil {
			u.Path = "/" + name
			return u.String()
		}
	}
	return fmt.Sprintf("%s dbname=%s", dsn, name)
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// connectSQLite establishes SQLite connection. SQLite allows a single writer,
// so the pool is limited to one connection and concurrent requests queue in
// database/sql instead of failing with "database is locked".
func connectSQLite(settings config.DatabaseSettings) (*gorm.DB, error) {
	dsn := sqliteDSN(settings.DSN)

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
	}
	// Every new connection to an in-memory DSN also opens a fresh, empty database.
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// sqliteDSN defaults to an in-memory database and adds a busy timeout to
// file DSNs so other processes holding the file (e.g. `migrate`) are waited on.
func sqliteDSN(dsn string) string {
	if dsn == "" {
		return sqliteMemoryDSN
	}
	if isSQLiteMemory(dsn) || strings.Contains(dsn, "_busy_timeout") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&" + sqliteBusyTimeout
	}
	return dsn + "?" + sqliteBusyTimeout
}

func isSQLiteMemory(dsn string) bool {
	return dsn == sqliteMemoryDSN || strings.Contains(dsn, "mode=memory")
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// DropDatabase drops a PostgreSQL database (test cleanup utility)
func DropDatabase(adminDSN, dbName string) error {
	db, err := gorm.Open(postgres.Open(adminDSN), gormConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer func() {
		if err := CloseDB(db); err != nil {
			log.Printf("Warning: failed to close database connection: %v", err)
		}
	}()

	err = db.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s", quoteIdentifier(dbName))).Error
	if err != nil {
		return fmt.Errorf("failed to drop database '%s': %w", dbName, err)
	}

	return nil
}
