// Package metrics exposes Prometheus collectors for HTTP traffic and workflow outcomes.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "storefront"

// Params defines the parameters required for the metrics registry.
type Params struct {
	fx.In

	Config *config.Config
}

// Metrics owns a private registry so tests can build independent instances.
type Metrics struct {
	registry *prometheus.Registry
	path     string
	enabled  bool

	httpInFlight     prometheus.Gauge
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	workflowOutcomes *prometheus.CounterVec
}

// New creates the collectors and registers them together with the Go and process collectors.
func New(params Params) *Metrics {
	path, enabled := "/metrics", true
	if params.Config != nil && params.Config.Metrics != nil {
		enabled = params.Config.Metrics.Enabled
		if params.Config.Metrics.Path != "" {
			path = params.Config.Metrics.Path
		}
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		path:     path,
		enabled:  enabled,
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		}, []string{"method", "route"}),
		workflowOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "workflow",
			Name:      "outcomes_total",
			Help:      "Workflow results by operation, success flag and failure code.",
		}, []string{"operation", "success", "code"}),
	}

	m.registry.MustRegister(
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.workflowOutcomes,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	return m
}

// Path returns the route the exposition handler is mounted on.
func (m *Metrics) Path() string {
	return m.path
}

// Enabled reports whether the exposition endpoint should be mounted.
func (m *Metrics) Enabled() bool {
	return m.enabled
}

// Handler returns an HTTP handler exposing the registered collectors.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request count and latency labelled by the matched route template.
func (m *Metrics) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Path() == m.path {
			return next(c)
		}

		m.httpInFlight.Inc()
		defer m.httpInFlight.Dec()

		start := time.Now()
		err := next(c)
		if err != nil {
			// Let echo write the error response so the recorded status is final.
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		method := strings.ToUpper(c.Request().Method)

		m.httpRequests.WithLabelValues(method, route, strconv.Itoa(c.Response().Status)).Inc()
		m.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

		return nil
	}
}

// RegisterDBStats exports database/sql pool statistics for db.
func (m *Metrics) RegisterDBStats(db *sql.DB) {
	m.registry.MustRegister(collectors.NewDBStatsCollector(db, namespace))
}

// RecordOutcome counts the result of a workflow operation.
func (m *Metrics) RecordOutcome(operation string, outcome usecase.Outcome) {
	code := ""
	if !outcome.Success && outcome.Failure != nil {
		code = outcome.Failure.ErrorCode()
	}

	m.workflowOutcomes.WithLabelValues(operation, strconv.FormatBool(outcome.Success), code).Inc()
}
