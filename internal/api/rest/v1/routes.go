package v1

import (
	"github.com/Kartikpatidar0006/Staffy/internal/domain/attendance"
	"github.com/Kartikpatidar0006/Staffy/internal/domain/dashboard"
	"github.com/Kartikpatidar0006/Staffy/internal/domain/employees"
	"github.com/Kartikpatidar0006/Staffy/internal/pkg/config"
	"github.com/Kartikpatidar0006/Staffy/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services bundles the application services the routes delegate to
type Services struct {
	Employees  employees.EmployeeService
	Attendance attendance.AttendanceService
	Dashboard  dashboard.DashboardService
}

// SetupRoutes sets up all the resource routes under BasePath.
func SetupRoutes(r *gin.Engine, services Services) {
	api := r.Group(BasePath)

	// Employees Routes
	employeeHandler := NewEmployeeHandler(services.Employees)
	employeeRoutes := api.Group("/employees")
	employeeRoutes.POST("", employeeHandler.Create)
	employeeRoutes.GET("", employeeHandler.List)
	employeeRoutes.GET("/:employee_id", employeeHandler.GetByEmployeeID)
	employeeRoutes.DELETE("/:employee_id", employeeHandler.DeleteByEmployeeID)

	// Attendance Routes
	attendanceHandler := NewAttendanceHandler(services.Attendance)
	attendanceRoutes := api.Group("/attendance")
	attendanceRoutes.POST("", attendanceHandler.Mark)
	attendanceRoutes.GET("/employee/:employee_id", attendanceHandler.ListByEmployee)
	attendanceRoutes.GET("/date/:date", attendanceHandler.ListByDate)

	// Dashboard Routes
	dashboardHandler := NewDashboardHandler(services.Dashboard)
	api.GET("/dashboard", dashboardHandler.Summary)
}

// NewRouter builds the engine with middleware, resource routes and the
// root, health and metrics endpoints.
func NewRouter(corsSettings config.CORSSettings, log logger.Logger, services Services, database Pinger) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	// Logging and metrics wrap Recovery so panicked requests are still recorded.
	r.Use(RequestLogger(log))
	r.Use(MetricsMiddleware())
	r.Use(Recovery(log))
	r.Use(CORS(corsSettings))
	r.Use(ErrorHandler(log))

	r.NoRoute(func(c *gin.Context) { _ = c.Error(errRouteNotFound) })
	r.NoMethod(func(c *gin.Context) { _ = c.Error(errMethodNotAllowed) })

	SetupRoutes(r, services)

	healthHandler := NewHealthHandler(database)
	r.GET("/", healthHandler.Root)
	r.GET("/health", healthHandler.Health)
	r.GET("/health/deep", healthHandler.DeepHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
