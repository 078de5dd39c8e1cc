package middleware

import (
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	httpmiddleware "storefront/internal/delivery/http/middleware"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware binds the authenticated caller to the request-scoped logger.
// It must run after Authenticate.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle adds user_id and role to the logger carried by the request context.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := httpmiddleware.CurrentUserID(c)
		if !ok {
			return next(c)
		}

		ctx := c.Request().Context()
		reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(
			slog.String("user_id", userID.String()),
			slog.String("role", httpmiddleware.CurrentRole(c).String()),
		)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, reqLogger)))

		if m.debug {
			reqLogger.DebugContext(ctx, "Authenticated request",
				slog.String("method", c.Request().Method),
				slog.String("route", c.Path()),
				slog.String("query", c.Request().URL.RawQuery),
			)
		}

		return next(c)
	}
}
