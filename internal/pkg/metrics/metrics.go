// Package metrics holds the Prometheus collectors exported by the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// HTTPRequestsTotal counts served requests by route, method and status.
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "staffy_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)

	// HTTPRequestDuration observes request latency by route and method.
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "staffy_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	EmployeesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "staffy_employees_created_total",
			Help: "Total number of employees created",
		},
	)

	// AttendanceMarked counts attendance marks by status, updates included.
	AttendanceMarked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "staffy_attendance_marked_total",
			Help: "Total number of attendance marks",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal, HTTPRequestDuration, EmployeesCreated, AttendanceMarked)
}
