//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/Kartikpatidar0006/Staffy/internal/domain/attendance"
	"github.com/Kartikpatidar0006/Staffy/internal/domain/employees"

	"github.com/stretchr/testify/mock"
)

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) Create(ctx context.Context, employee *employees.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) List(ctx context.Context, query *employees.Query) ([]*employees.Employee, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*employees.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*employees.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employees.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) GetByEmail(ctx context.Context, email string) (*employees.Employee, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employees.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeRepository) CountByDepartment(ctx context.Context) ([]employees.DepartmentHeadcount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]employees.DepartmentHeadcount), args.Error(1)
}

type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) Upsert(ctx context.Context, record *attendance.Record) (bool, error) {
	args := m.Called(ctx, record)
	return args.Bool(0), args.Error(1)
}

func (m *MockAttendanceRepository) List(ctx context.Context, query *attendance.Query) ([]*attendance.RecordView, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*attendance.RecordView), args.Error(1)
}

func (m *MockAttendanceRepository) CountByEmployee(ctx context.Context) (map[string]attendance.StatusCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]attendance.StatusCounts), args.Error(1)
}

func (m *MockAttendanceRepository) CountByEmployeeID(ctx context.Context, employeeID string) (attendance.StatusCounts, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(attendance.StatusCounts), args.Error(1)
}

func (m *MockAttendanceRepository) CountByDate(ctx context.Context, date string) (attendance.StatusCounts, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(attendance.StatusCounts), args.Error(1)
}
