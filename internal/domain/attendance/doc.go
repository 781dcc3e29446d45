// Package attendance defines daily attendance records and the contracts of
// the services and repositories that manage them.
package attendance
