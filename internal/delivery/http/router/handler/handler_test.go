package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedOutcome struct {
	operation string
	outcome   usecase.Outcome
}

type fakeRecorder struct {
	calls []recordedOutcome
}

func (r *fakeRecorder) RecordOutcome(operation string, outcome usecase.Outcome) {
	r.calls = append(r.calls, recordedOutcome{operation: operation, outcome: outcome})
}

// testServer wires echo the way the HTTP server does, minus auth: the caller
// identity is injected directly.
type testServer struct {
	echo     *echo.Echo
	recorder *fakeRecorder
}

func newTestServer() *testServer {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.Default()).HandleHTTPError

	return &testServer{echo: e, recorder: &fakeRecorder{}}
}

func asCaller(userID uuid.UUID, role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("userID", userID)
			c.Set("roles", entity.Roles{role})

			return next(c)
		}
	}
}

func (s *testServer) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())

	return rec, resp
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer()
	s.echo.GET("/health", HealthCheck)

	rec, resp := s.do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
}
