package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kartikpatidar0006/Staffy/internal/domain/attendance"
	"github.com/Kartikpatidar0006/Staffy/internal/domain/employees"
	"github.com/Kartikpatidar0006/Staffy/internal/pkg/logger"
	"github.com/Kartikpatidar0006/Staffy/internal/pkg/metrics"
)

// employeeService implements the EmployeeService interface
type employeeService struct {
	employeeRepo   employees.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	logger         logger.Logger
}

// NewEmployeeService creates a new employeeService instance
func NewEmployeeService(
	employeeRepo employees.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	logger logger.Logger,
) (employees.EmployeeService, error) {
	return &employeeService{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		logger:         logger,
	}, nil
}

// Create registers a new employee after checking that neither the
// employee ID nor the email is taken.
func (s *employeeService) Create(ctx context.Context, employeeID, fullName, email, department string) (*employees.Summary, error) {
	employee := employees.NewEmployee(employeeID, fullName, email, department)
	if err := employee.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	if err := s.ensureUnique(ctx, employee); err != nil {
		return nil, err
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	metrics.EmployeesCreated.Inc()
	s.logger.Info("Registered employee ", employee.EmployeeID, " in department ", employee.Department)

	return &employees.Summary{Employee: *employee}, nil
}

func (s *employeeService) ensureUnique(ctx context.Context, employee *employees.Employee) error {
	_, err := s.employeeRepo.GetByEmployeeID(ctx, employee.EmployeeID)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", employees.ErrDuplicateEmployeeID, employee.EmployeeID)
	case !errors.Is(err, employees.ErrEmployeeNotFound):
		return err
	}

	_, err = s.employeeRepo.GetByEmail(ctx, employee.Email)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", employees.ErrDuplicateEmail, employee.Email)
	case !errors.Is(err, employees.ErrEmployeeNotFound):
		return err
	}

	return nil
}

// List returns employees with their attendance totals
func (s *employeeService) List(ctx context.Context, query *employees.Query) ([]*employees.Summary, error) {
	employeeList, err := s.employeeRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	counts, err := s.attendanceRepo.CountByEmployee(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]*employees.Summary, len(employeeList))
	for i, employee := range employeeList {
		c := counts[employee.EmployeeID]
		summaries[i] = &employees.Summary{
			Employee:     *employee,
			TotalPresent: c.Present,
			TotalAbsent:  c.Absent,
		}
	}
	return summaries, nil
}

func (s *employeeService) GetByEmployeeID(ctx context.Context, employeeID string) (*employees.Summary, error) {
	employee, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	counts, err := s.attendanceRepo.CountByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return &employees.Summary{
		Employee:     *employee,
		TotalPresent: counts.Present,
		TotalAbsent:  counts.Absent,
	}, nil
}

// DeleteByEmployeeID removes the employee and their attendance history
func (s *employeeService) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	return s.employeeRepo.DeleteByEmployeeID(ctx, employeeID)
}
