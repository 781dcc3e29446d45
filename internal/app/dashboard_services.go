package app

import (
	"context"
	"time"

	"github.com/Kartikpatidar0006/Staffy/internal/domain/attendance"
	"github.com/Kartikpatidar0006/Staffy/internal/domain/dashboard"
	"github.com/Kartikpatidar0006/Staffy/internal/domain/employees"
	"github.com/Kartikpatidar0006/Staffy/internal/pkg/logger"
)

type dashboardService struct {
	employeeRepo   employees.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	now            func() time.Time
	logger         logger.Logger
}

// NewDashboardService creates a new dashboardService instance. A nil clock
// defaults to time.Now.
func NewDashboardService(
	employeeRepo employees.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	clock func() time.Time,
	logger logger.Logger,
) (dashboard.DashboardService, error) {
	if clock == nil {
		clock = time.Now
	}
	return &dashboardService{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		now:            clock,
		logger:         logger,
	}, nil
}

// Summary aggregates headcount and today's attendance
func (s *dashboardService) Summary(ctx context.Context) (*dashboard.Summary, error) {
	today := attendance.Today(s.now)

	total, err := s.employeeRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	departments, err := s.employeeRepo.CountByDepartment(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.attendanceRepo.CountByDate(ctx, today)
	if err != nil {
		return nil, err
	}

	return &dashboard.Summary{
		Date:              today,
		TotalEmployees:    total,
		TotalPresentToday: counts.Present,
		TotalAbsentToday:  counts.Absent,
		DepartmentCount:   len(departments),
		Departments:       departments,
	}, nil
}
