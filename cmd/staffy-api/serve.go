package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	v1 "github.com/Kartikpatidar0006/Staffy/internal/api/rest/v1"
	"github.com/Kartikpatidar0006/Staffy/internal/app"
	"github.com/Kartikpatidar0006/Staffy/internal/infrastructure/persistence"
	"github.com/Kartikpatidar0006/Staffy/internal/pkg/config"
	"github.com/Kartikpatidar0006/Staffy/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP server on the configured port (default 8000).

Tables are created on startup when missing. The server shuts down cleanly
on SIGTERM or SIGINT.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	db, err := openDatabase(cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			log.Warn("Failed to close database: ", err)
		}
	}()

	services, err := initializeServices(db, log)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := v1.NewRouter(cfg.CORS, log, services, persistence.NewProbe(db))

	return startServerWithGracefulShutdown(cfg, router, log)
}

// initializeServices builds repositories and application services on db
func initializeServices(db *gorm.DB, log logger.Logger) (v1.Services, error) {
	employeeRepo, err := persistence.NewGormEmployeeRepository(db, log)
	if err != nil {
		return v1.Services{}, fmt.Errorf("failed to create employee repository: %w", err)
	}

	attendanceRepo, err := persistence.NewGormAttendanceRepository(db, log)
	if err != nil {
		return v1.Services{}, fmt.Errorf("failed to create attendance repository: %w", err)
	}

	employeeService, err := app.NewEmployeeService(employeeRepo, attendanceRepo, log)
	if err != nil {
		return v1.Services{}, fmt.Errorf("failed to create employee service: %w", err)
	}

	attendanceService, err := app.NewAttendanceService(employeeRepo, attendanceRepo, log)
	if err != nil {
		return v1.Services{}, fmt.Errorf("failed to create attendance service: %w", err)
	}

	dashboardService, err := app.NewDashboardService(employeeRepo, attendanceRepo, nil, log)
	if err != nil {
		return v1.Services{}, fmt.Errorf("failed to create dashboard service: %w", err)
	}

	return v1.Services{
		Employees:  employeeService,
		Attendance: attendanceService,
		Dashboard:  dashboardService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, handler http.Handler, log logger.Logger) error {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info(v1.AppName, " ", v1.AppVersion, " listening on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
