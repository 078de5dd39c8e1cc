package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "keeps client id", header: "req-123", wantSame: true},
		{name: "generates when missing", header: ""},
		{name: "replaces oversized id", header: strings.Repeat("x", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			var hasLogger bool
			mw := NewRequestIDMiddleware(slog.Default())
			err := mw.Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

				return nil
			})(c)
			require.NoError(t, err)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, ctxID)
			assert.True(t, hasLogger)
			if tt.wantSame {
				assert.Equal(t, tt.header, got)
			} else {
				_, parseErr := uuid.Parse(got)
				assert.NoError(t, parseErr)
			}
		})
	}
}

func TestLoggerMiddleware_Handle_TagsAuthenticatedCaller(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/orders/1/cancel", nil), httptest.NewRecorder())
	userID := uuid.New()
	c.Set("userID", userID)
	c.Set("roles", entity.Roles{entity.RoleCustomer})

	mw := NewLoggerMiddleware(base, cfg)
	err := mw.Handle(func(c echo.Context) error {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside handler")

		return nil
	})(c)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Authenticated request")
	assert.Contains(t, out, `"user_id":"`+userID.String()+`"`)
	assert.Contains(t, out, `"role":"customer"`)
}

func TestLoggerMiddleware_Handle_AnonymousPassesThrough(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())

	called := false
	err := NewLoggerMiddleware(base, &config.Config{}).Handle(func(c echo.Context) error {
		called = true
		assert.Nil(t, deliverycontext.GetLogger(c.Request().Context()))

		return nil
	})(c)
	require.NoError(t, err)
	assert.True(t, called)
	assert.Empty(t, buf.String())
}
