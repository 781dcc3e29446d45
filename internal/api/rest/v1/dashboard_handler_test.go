//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/Kartikpatidar0006/Staffy/internal/domain/dashboard"
	"github.com/Kartikpatidar0006/Staffy/internal/domain/employees"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDashboardHandler_Summary(t *testing.T) {
	tr := newTestRouter(t)
	tr.dashboard.On("Summary", mock.Anything).Return(&dashboard.Summary{
		Date:              "2025-03-14",
		TotalEmployees:    3,
		TotalPresentToday: 2,
		TotalAbsentToday:  1,
		DepartmentCount:   2,
		Departments: []employees.DepartmentHeadcount{
			{Department: "Engineering", Employees: 2},
			{Department: "Sales", Employees: 1},
		},
	}, nil)

	w := tr.do(http.MethodGet, "/api/dashboard", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"total_employees": 3,
		"total_present_today": 2,
		"total_absent_today": 1,
		"department_count": 2,
		"departments": [
			{"department": "Engineering", "employee_count": 2},
			{"department": "Sales", "employee_count": 1}
		],
		"date": "2025-03-14"
	}`, w.Body.String())
}
