// Package app implements the application services of the HR API. Services
// coordinate employee and attendance repositories, enforce uniqueness and
// existence rules, and emit business metrics.
package app
