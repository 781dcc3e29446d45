// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to interact with PostgreSQL or SQLite,
// managing employees and their attendance records. Repositories validate
// entities before writing and translate storage errors into domain errors.
package persistence
