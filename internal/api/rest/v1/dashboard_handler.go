package v1

import (
	"net/http"

	"github.com/Kartikpatidar0006/Staffy/internal/domain/dashboard"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregated HR overview
type DashboardHandler interface {
	Summary(ctx *gin.Context)
}

type dashboardHandler struct {
	dashboardService dashboard.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandler{
		dashboardService: dashboardService,
	}
}

// Summary handles the GET request for the dashboard
// @Summary Dashboard summary
// @Tags Dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Router /dashboard [get]
func (handler *dashboardHandler) Summary(ctx *gin.Context) {
	summary, err := handler.dashboardService.Summary(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, newDashboardResponse(summary))
}
