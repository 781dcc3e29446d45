// Package employees defines the employee entity, the contracts of the services
// and repositories that manage it, and the errors they report.
package employees
