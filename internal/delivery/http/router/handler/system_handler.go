package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SystemHandler serves first-run bootstrap endpoints.
type SystemHandler struct {
	uc      usecase.SystemUsecase
	metrics OutcomeRecorder
}

// NewSystemHandler is the constructor for SystemHandler, injected by Fx.
func NewSystemHandler(uc usecase.SystemUsecase, metrics OutcomeRecorder) *SystemHandler {
	return &SystemHandler{uc: uc, metrics: metrics}
}

// GetStatus reports whether an administrator exists yet.
func (h *SystemHandler) GetStatus(c echo.Context) error {
	output := h.uc.CheckInitializationStatus(c.Request().Context())
	h.metrics.RecordOutcome(opSystemStatus, output.Outcome)

	return response.FromOutcome(c, http.StatusOK, output.Outcome, output.Status)
}

// Initialize creates the first administrator.
func (h *SystemHandler) Initialize(c echo.Context) error {
	input := new(usecase.InitializeSystemInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	output := h.uc.InitializeSystem(c.Request().Context(), input)
	h.metrics.RecordOutcome(opInitializeSystem, output.Outcome)

	return response.FromOutcome(c, http.StatusCreated, output.Outcome, output.Admin)
}
