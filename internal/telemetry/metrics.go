// Package telemetry exposes Prometheus metrics for the HTTP API.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsTotal counts handled HTTP requests.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "imghost_http_requests_total",
		Help: "Total number of HTTP requests processed.",
	}, []string{"method", "endpoint", "status"})

	// RequestDuration observes per-request latency.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "imghost_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "endpoint", "status"})

	// UploadedBytes totals the payload bytes accepted by the upload endpoint.
	UploadedBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "imghost_uploaded_bytes_total",
		Help: "Total bytes accepted by the upload endpoint.",
	})
)

// Handler exposes the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
