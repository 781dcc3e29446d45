package v1

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/Kartikpatidar0006/Staffy/internal/pkg/config"
	"github.com/Kartikpatidar0006/Staffy/internal/pkg/logger"
	"github.com/Kartikpatidar0006/Staffy/internal/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Recovery returns a middleware that recovers from panics, logs the stack trace,
// and returns a 500 to the client so the server continues serving.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.With(
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()),
				).Error("panic recovered: ", r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Detail: InternalServerErrorDetail})
			}
		}()
		c.Next()
	}
}

// CORS builds the cross-origin middleware from settings. A "*" entry
// allows every origin.
func CORS(settings config.CORSSettings) gin.HandlerFunc {
	settings.Normalize()

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if settings.AllowsAll() || len(settings.Origins) == 0 {
		corsConfig.AllowOrigins = []string{config.AllowAllOrigins}
	} else {
		corsConfig.AllowOrigins = settings.Origins
	}

	return cors.New(corsConfig)
}

// RequestLogger emits one structured line per request
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.With(
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		).Info("request")
	}
}

// MetricsMiddleware records HTTP request counts and durations for Prometheus
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := fmt.Sprintf("%d", c.Writer.Status())
		metrics.HTTPRequestsTotal.WithLabelValues(path, method, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(path, method).Observe(time.Since(start).Seconds())
	}
}

// ErrorHandler renders the last error a handler attached to the context.
// Validation errors become 422, HTTPError keeps its status and anything
// else is logged and answered with a generic 500.
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var validationErr *RequestValidationError
		var httpErr *HTTPError

		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: validationErr.Errors})
		case errors.As(err, &httpErr):
			c.JSON(httpErr.Status, ErrorResponse{Detail: httpErr.Detail})
		default:
			log.With("method", c.Request.Method, "path", c.Request.URL.Path).Error("unhandled error: ", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: InternalServerErrorDetail})
		}
	}
}
