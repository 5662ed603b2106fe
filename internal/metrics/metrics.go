// Package metrics exposes Prometheus instrumentation for the HTTP surface and
// the submission pipeline.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	contactSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Contact form submissions by pipeline outcome",
		},
		[]string{"outcome"},
	)

	upstreamCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_calls_total",
			Help: "Calls to external collaborators by result",
		},
		[]string{"upstream", "result"},
	)
)

// RecordSubmission counts one pipeline outcome.
func RecordSubmission(outcome string) {
	contactSubmissionsTotal.WithLabelValues(outcome).Inc()
}

// RecordUpstream counts one call to an external service (captcha, places, mail, store).
func RecordUpstream(upstream string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	upstreamCallsTotal.WithLabelValues(upstream, result).Inc()
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// Middleware records request count and latency. It must wrap the ServeMux
// directly so the matched pattern is visible on the request afterwards.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
