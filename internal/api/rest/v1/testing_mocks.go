//go:build unit
// +build unit

package v1

import (
	"context"
	"errors"
	"time"

	"github.com/Kartikpatidar0006/Staffy/internal/domain/attendance"
	"github.com/Kartikpatidar0006/Staffy/internal/domain/dashboard"
	"github.com/Kartikpatidar0006/Staffy/internal/domain/employees"

	"github.com/stretchr/testify/mock"
)

// MockEmployeeService is a mock implementation of EmployeeService
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) Create(ctx context.Context, employeeID, fullName, email, department string) (*employees.Summary, error) {
	args := m.Called(ctx, employeeID, fullName, email, department)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employees.Summary), args.Error(1)
}

func (m *MockEmployeeService) List(ctx context.Context, query *employees.Query) ([]*employees.Summary, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*employees.Summary), args.Error(1)
}

func (m *MockEmployeeService) GetByEmployeeID(ctx context.Context, employeeID string) (*employees.Summary, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employees.Summary), args.Error(1)
}

func (m *MockEmployeeService) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}

// MockAttendanceService is a mock implementation of AttendanceService
type MockAttendanceService struct {
	mock.Mock
}

func (m *MockAttendanceService) Mark(ctx context.Context, employeeID, date, status string) (*attendance.RecordView, bool, error) {
	args := m.Called(ctx, employeeID, date, status)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*attendance.RecordView), args.Bool(1), args.Error(2)
}

func (m *MockAttendanceService) ListByEmployee(ctx context.Context, employeeID, date string) ([]*attendance.RecordView, error) {
	args := m.Called(ctx, employeeID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*attendance.RecordView), args.Error(1)
}

func (m *MockAttendanceService) ListByDate(ctx context.Context, date string) ([]*attendance.RecordView, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*attendance.RecordView), args.Error(1)
}

// MockDashboardService is a mock implementation of DashboardService
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Summary(ctx context.Context) (*dashboard.Summary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.Summary), args.Error(1)
}

// fakePinger reports a fixed result
type fakePinger struct {
	err error
}

func (p fakePinger) Check(ctx context.Context) error {
	return p.err
}

var errDatabaseDown = errors.New("ping: connection refused")

func testSummary(employeeID string) *employees.Summary {
	return &employees.Summary{
		Employee: employees.Employee{
			ID:              "5f0c3c1e-7d1c-4a8e-9a57-7f0e6c1d2b3a",
			EmployeeID:      employeeID,
			FullName:        "Ada Lovelace",
			Email:           "ada@example.com",
			Department:      "Engineering",
			DateTimeCreated: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
		},
		TotalPresent: 3,
		TotalAbsent:  1,
	}
}

func testRecordView(employeeID, date, status string) *attendance.RecordView {
	return &attendance.RecordView{
		Record: attendance.Record{
			ID:         "record-" + employeeID + "-" + date,
			EmployeeID: employeeID,
			Date:       date,
			Status:     status,
		},
		EmployeeName: "Ada Lovelace",
	}
}
