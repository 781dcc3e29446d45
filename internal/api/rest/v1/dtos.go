package v1

import (
	"strings"
	"time"

	"github.com/Kartikpatidar0006/Staffy/internal/domain/attendance"
	"github.com/Kartikpatidar0006/Staffy/internal/domain/dashboard"
	"github.com/Kartikpatidar0006/Staffy/internal/domain/employees"
)

// CreateEmployeeRequest is the body of POST /employees
type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,max=50"`
	FullName   string `json:"full_name" validate:"required,max=255"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Department string `json:"department" validate:"required,max=100"`
}

// Validate trims the request and checks it
func (r *CreateEmployeeRequest) Validate() error {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = employees.NormalizeEmail(r.Email)
	r.Department = strings.TrimSpace(r.Department)
	return validateBody(r)
}

// EmployeeResponse represents an employee with attendance totals
type EmployeeResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Department   string    `json:"department"`
	CreatedAt    time.Time `json:"created_at"`
	TotalPresent int64     `json:"total_present"`
	TotalAbsent  int64     `json:"total_absent"`
}

func newEmployeeResponse(s *employees.Summary) EmployeeResponse {
	return EmployeeResponse{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		FullName:     s.FullName,
		Email:        s.Email,
		Department:   s.Department,
		CreatedAt:    s.DateTimeCreated,
		TotalPresent: s.TotalPresent,
		TotalAbsent:  s.TotalAbsent,
	}
}

// MarkAttendanceRequest is the body of POST /attendance
type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,max=50"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Status     string `json:"status" validate:"required,oneof=Present Absent"`
}

// Validate trims the request and checks it
func (r *MarkAttendanceRequest) Validate() error {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.Date = strings.TrimSpace(r.Date)
	return validateBody(r)
}

// AttendanceResponse represents one attendance record
type AttendanceResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	Status       string `json:"status"`
}

func newAttendanceResponse(v *attendance.RecordView) AttendanceResponse {
	return AttendanceResponse{
		ID:           v.ID,
		EmployeeID:   v.EmployeeID,
		EmployeeName: v.EmployeeName,
		Date:         v.Date,
		Status:       v.Status,
	}
}

func newAttendanceListResponse(views []*attendance.RecordView) []AttendanceResponse {
	listResponse := make([]AttendanceResponse, 0, len(views))
	for _, view := range views {
		listResponse = append(listResponse, newAttendanceResponse(view))
	}
	return listResponse
}

// DepartmentResponse is the headcount of one department
type DepartmentResponse struct {
	Department    string `json:"department"`
	EmployeeCount int64  `json:"employee_count"`
}

// DashboardResponse summarises headcount and today's attendance
type DashboardResponse struct {
	TotalEmployees    int64                `json:"total_employees"`
	TotalPresentToday int64                `json:"total_present_today"`
	TotalAbsentToday  int64                `json:"total_absent_today"`
	DepartmentCount   int                  `json:"department_count"`
	Departments       []DepartmentResponse `json:"departments"`
	Date              string               `json:"date"`
}

func newDashboardResponse(s *dashboard.Summary) DashboardResponse {
	departments := make([]DepartmentResponse, 0, len(s.Departments))
	for _, d := range s.Departments {
		departments = append(departments, DepartmentResponse{Department: d.Department, EmployeeCount: d.Employees})
	}
	return DashboardResponse{
		TotalEmployees:    s.TotalEmployees,
		TotalPresentToday: s.TotalPresentToday,
		TotalAbsentToday:  s.TotalAbsentToday,
		DepartmentCount:   s.DepartmentCount,
		Departments:       departments,
		Date:              s.Date,
	}
}

// MessageResponse carries a human readable confirmation
type MessageResponse struct {
	Message string `json:"message"`
}

// RootResponse is returned by GET /
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// HealthResponse is returned by the health endpoints
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}
