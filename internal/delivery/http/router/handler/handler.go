// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// OutcomeRecorder counts use case outcomes per operation.
type OutcomeRecorder interface {
	RecordOutcome(operation string, outcome usecase.Outcome)
}

// Operation names reported to the OutcomeRecorder.
const (
	opInitializeSystem     = "initialize_system"
	opSystemStatus         = "system_status"
	opLogin                = "login"
	opRegisterStoreManager = "register_store_manager"
	opListPendingRequests  = "list_pending_requests"
	opApproveRequest       = "approve_request"
	opRejectRequest        = "reject_request"
	opAdminSystemStatus    = "admin_system_status"
	opReviewRequest        = "review_request"
	opCancelOrder          = "cancel_order"
	opProcessOrder         = "process_order"
)

// bindAndValidate decodes the body into input and runs its validate tags.
// Failures are returned for the HTTP error handler to render.
func bindAndValidate(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid request body")
	}

	return c.Validate(input)
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithMessage("Invalid resource ID")
	}

	return id, nil
}

// caller returns the authenticated user's ID.
func caller(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return userID, nil
}

// HealthCheck is a liveness probe.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
