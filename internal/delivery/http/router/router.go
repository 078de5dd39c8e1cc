// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	deliverymiddleware "storefront/internal/delivery/middleware"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MetricsExporter exposes the Prometheus scrape endpoint.
type MetricsExporter interface {
	Enabled() bool
	Path() string
	Handler() http.Handler
}

type RouterParams struct {
	fx.In

	SystemHandler              *handler.SystemHandler
	AuthHandler                *handler.AuthHandler
	StoreManagerRequestHandler *handler.StoreManagerRequestHandler
	RequestReviewHandler       *handler.RequestReviewHandler
	OrderHandler               *handler.OrderHandler
	AuthMiddleware             *middleware.AuthMiddleware
	LoggerMiddleware           *deliverymiddleware.LoggerMiddleware
	Metrics                    MetricsExporter
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware
	callerLogger := r.params.LoggerMiddleware

	e.GET("/health", handler.HealthCheck)
	if r.params.Metrics != nil && r.params.Metrics.Enabled() {
		e.GET(r.params.Metrics.Path(), echo.WrapHandler(r.params.Metrics.Handler()))
	}

	systemGroup := e.Group("/system")
	{
		systemGroup.GET("/status", r.params.SystemHandler.GetStatus)
		systemGroup.POST("/initialize", r.params.SystemHandler.Initialize)
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/store-manager", r.params.AuthHandler.RegisterStoreManager)
		authGroup.POST("/login", r.params.AuthHandler.Login)
	}

	// Admin routes require a valid token and the admin role.
	adminGroup := e.Group("/admin")
	adminGroup.Use(auth.Authenticate, callerLogger.Handle)
	adminGroup.Use(auth.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/store-manager-requests", r.params.StoreManagerRequestHandler.ListPending)
		adminGroup.POST("/store-manager-requests/:id/approve", r.params.StoreManagerRequestHandler.Approve)
		adminGroup.POST("/store-manager-requests/:id/reject", r.params.StoreManagerRequestHandler.Reject)
		adminGroup.GET("/system-status", r.params.StoreManagerRequestHandler.SystemStatus)
		adminGroup.POST("/requests/:id/review", r.params.RequestReviewHandler.Review)
	}

	// Order routes only require a token; the use case checks the role.
	orderGroup := e.Group("/orders")
	orderGroup.Use(auth.Authenticate, callerLogger.Handle)
	{
		orderGroup.POST("/:id/cancel", r.params.OrderHandler.Cancel)
		orderGroup.POST("/:id/process", r.params.OrderHandler.Process)
	}
}
