package handler

import (
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// OrderHandler serves order cancellation and fulfilment.
type OrderHandler struct {
	uc      usecase.OrderUsecase
	metrics OutcomeRecorder
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, metrics OutcomeRecorder) *OrderHandler {
	return &OrderHandler{uc: uc, metrics: metrics}
}

// Cancel cancels the order named by :id on behalf of the caller.
func (h *OrderHandler) Cancel(c echo.Context) error {
	userID, err := caller(c)
	if err != nil {
		return err
	}
	orderID, err := pathID(c)
	if err != nil {
		return err
	}

	input := new(usecase.CancelOrderInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}
	input.OrderID = orderID
	input.UserID = userID
	input.UserRole = middleware.CurrentRole(c)

	output := h.uc.CancelOrder(c.Request().Context(), input)
	h.metrics.RecordOutcome(opCancelOrder, output.Outcome)

	return response.FromOutcome(c, http.StatusOK, output.Outcome, output.Order)
}

// Process applies a fulfilment action to the order named by :id.
func (h *OrderHandler) Process(c echo.Context) error {
	processorID, err := caller(c)
	if err != nil {
		return err
	}
	orderID, err := pathID(c)
	if err != nil {
		return err
	}

	input := new(usecase.ProcessOrderInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}
	input.OrderID = orderID
	input.ProcessorID = processorID
	input.Role = middleware.CurrentRole(c)

	output := h.uc.ProcessOrder(c.Request().Context(), input)
	h.metrics.RecordOutcome(opProcessOrder, output.Outcome)

	return response.FromOutcome(c, http.StatusOK, output.Outcome, output.Order)
}
