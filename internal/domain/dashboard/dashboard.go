// Package dashboard defines the aggregated headcount and attendance overview.
package dashboard

import (
	"context"

	"github.com/Kartikpatidar0006/Staffy/internal/domain/employees"
)

// Summary is the overview shown on the dashboard for a single day
type Summary struct {
	Date              string
	TotalEmployees    int64
	TotalPresentToday int64
	TotalAbsentToday  int64
	DepartmentCount   int
	Departments       []employees.DepartmentHeadcount
}

// DashboardService builds the dashboard summary.
type DashboardService interface {
	// Summary aggregates headcount and today's attendance.
	Summary(ctx context.Context) (*Summary, error)
}
