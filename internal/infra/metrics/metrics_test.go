package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics() *Metrics {
	return New(Params{Config: &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}})
}

func TestMetrics_RecordOutcome(t *testing.T) {
	m := newTestMetrics()

	m.RecordOutcome("cancel_order", usecase.Succeeded("Order cancelled successfully"))
	m.RecordOutcome("cancel_order", usecase.Rejected(domainerrors.ErrOrderNotCancellable, ""))
	m.RecordOutcome("cancel_order", usecase.Rejected(domainerrors.ErrOrderNotCancellable, ""))

	assert.InDelta(t, 1, testutil.ToFloat64(m.workflowOutcomes.WithLabelValues("cancel_order", "true", "")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.workflowOutcomes.WithLabelValues("cancel_order", "false", domainerrors.ErrOrderNotCancellable.ErrorCode())), 0)
}

func TestMetrics_MiddlewareUsesRouteTemplate(t *testing.T) {
	m := newTestMetrics()
	e := echo.New()
	e.Use(m.Middleware)
	e.GET("/orders/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.GET(m.Path(), echo.WrapHandler(m.Handler()))

	for range 2 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/42", nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
	}

	assert.InDelta(t, 2, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/orders/:id", "204")), 0)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `storefront_http_requests_total{method="GET",route="/orders/:id",status="204"} 2`))
}

func TestMetrics_MiddlewareRecordsErrorStatus(t *testing.T) {
	m := newTestMetrics()
	e := echo.New()
	e.Use(m.Middleware)
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.InDelta(t, 1, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/boom", "418")), 0)
}

func TestMetrics_RegisterDBStats(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m := newTestMetrics()
	m.RegisterDBStats(db)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Contains(t, rec.Body.String(), "go_sql_max_open_connections")
}

func TestMetrics_Enabled(t *testing.T) {
	assert.True(t, newTestMetrics().Enabled())

	disabled := New(Params{Config: &config.Config{Metrics: &config.MetricsConfig{Enabled: false}}})
	assert.False(t, disabled.Enabled())
	assert.Equal(t, "/metrics", disabled.Path())
}
