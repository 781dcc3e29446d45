package app

import (
	"context"
	"fmt"

	"github.com/Kartikpatidar0006/Staffy/internal/domain/attendance"
	"github.com/Kartikpatidar0006/Staffy/internal/domain/employees"
	"github.com/Kartikpatidar0006/Staffy/internal/pkg/logger"
	"github.com/Kartikpatidar0006/Staffy/internal/pkg/metrics"
)

// attendanceService implements the AttendanceService interface
type attendanceService struct {
	employeeRepo   employees.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	logger         logger.Logger
}

// NewAttendanceService creates a new attendanceService instance
func NewAttendanceService(
	employeeRepo employees.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	logger logger.Logger,
) (attendance.AttendanceService, error) {
	return &attendanceService{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		logger:         logger,
	}, nil
}

// Mark records the employee's status for a date. The returned flag is true
// when a new record was created and false when an existing one was updated.
func (s *attendanceService) Mark(ctx context.Context, employeeID, date, status string) (*attendance.RecordView, bool, error) {
	employee, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, false, err
	}

	record := attendance.NewRecord(employee.EmployeeID, date, status)
	if err := record.Validate(); err != nil {
		return nil, false, fmt.Errorf("validation error: %w", err)
	}

	created, err := s.attendanceRepo.Upsert(ctx, record)
	if err != nil {
		return nil, false, err
	}

	metrics.AttendanceMarked.WithLabelValues(record.Status).Inc()

	return &attendance.RecordView{Record: *record, EmployeeName: employee.FullName}, created, nil
}

// ListByEmployee returns the employee's records, newest first, optionally
// restricted to a single date.
func (s *attendanceService) ListByEmployee(ctx context.Context, employeeID, date string) ([]*attendance.RecordView, error) {
	if _, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID); err != nil {
		return nil, err
	}

	return s.attendanceRepo.List(ctx, &attendance.Query{EmployeeID: employeeID, Date: date})
}

func (s *attendanceService) ListByDate(ctx context.Context, date string) ([]*attendance.RecordView, error) {
	return s.attendanceRepo.List(ctx, &attendance.Query{Date: date})
}
