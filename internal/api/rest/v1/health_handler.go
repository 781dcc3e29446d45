package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger checks that a dependency is reachable
type Pinger interface {
	Check(ctx context.Context) error
}

// HealthHandler serves the root and health endpoints
type HealthHandler interface {
	Root(ctx *gin.Context)
	Health(ctx *gin.Context)
	DeepHealth(ctx *gin.Context)
}

type healthHandler struct {
	database Pinger
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(database Pinger) HealthHandler {
	return &healthHandler{database: database}
}

func (handler *healthHandler) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, RootResponse{Message: "Staffy API is running", Version: AppVersion})
}

func (handler *healthHandler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
}

// DeepHealth also pings the database
func (handler *healthHandler) DeepHealth(ctx *gin.Context) {
	if handler.database == nil {
		ctx.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy", Database: "not configured"})
		return
	}

	if err := handler.database.Check(ctx.Request.Context()); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy", Database: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, HealthResponse{Status: "healthy", Database: "ok"})
}
