// Package metrics provides Prometheus instrumentation.
//
// Wire it up once during boot:
//
//	r.Use(metrics.Middleware())
//	r.Handle("GET", "/metrics", "metrics", metrics.Handler())
//
// Then scrape http://localhost:8080/metrics from Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestDuration tracks how long each HTTP request takes,
	// broken down by method, path, and status code.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "orderdesk",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts all HTTP requests.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "orderdesk",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// OrdersCreated counts orders created through the batch endpoint.
	OrdersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "orderdesk",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total number of orders created.",
		},
	)

	// OrdersDeleted counts confirmed order deletions.
	OrdersDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "orderdesk",
			Subsystem: "orders",
			Name:      "deleted_total",
			Help:      "Total number of orders deleted.",
		},
	)
)

var registry = prometheus.NewRegistry()

func init() {
	registry.MustRegister(
		RequestDuration,
		RequestTotal,
		OrdersCreated,
		OrdersDeleted,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// statusRecorder captures the response status for labelling.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// Middleware records duration and count for every request.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sr, r)

			status := strconv.Itoa(sr.status)
			RequestDuration.WithLabelValues(r.Method, r.URL.Path, status).
				Observe(time.Since(start).Seconds())
			RequestTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		})
	}
}

// Handler returns the /metrics scrape endpoint.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
