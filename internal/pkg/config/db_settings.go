package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Supported database backends
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// DatabaseSettings describes how to reach the relational store.
// Name is only used for Postgres, where the database is created when missing.
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	DSN  string `mapstructure:"dsn" validate:"required_if=Type postgres"`
	Name string `mapstructure:"name" validate:"omitempty,max=63"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}
	return nil
}

// ResolveType infers Type from the DSN when it was left empty. SQLAlchemy
// style sqlite:/// URLs are reduced to their file path.
func (s *DatabaseSettings) ResolveType() {
	if strings.HasPrefix(s.DSN, "sqlite:///") {
		s.DSN = strings.TrimPrefix(s.DSN, "sqlite:///")
		if s.Type == "" {
			s.Type = SqliteDbType
		}
	}
	if s.Type != "" {
		return
	}

	dsn := strings.ToLower(s.DSN)
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		s.Type = PostgresDbType
		return
	}
	s.Type = SqliteDbType
}
