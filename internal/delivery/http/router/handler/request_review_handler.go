package handler

import (
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// RequestReviewHandler reviews requests of any type.
type RequestReviewHandler struct {
	uc      usecase.RequestReviewUsecase
	metrics OutcomeRecorder
}

// NewRequestReviewHandler is the constructor for RequestReviewHandler, injected by Fx.
func NewRequestReviewHandler(uc usecase.RequestReviewUsecase, metrics OutcomeRecorder) *RequestReviewHandler {
	return &RequestReviewHandler{uc: uc, metrics: metrics}
}

// Review approves or rejects the request named by :id.
func (h *RequestReviewHandler) Review(c echo.Context) error {
	reviewerID, err := caller(c)
	if err != nil {
		return err
	}
	requestID, err := pathID(c)
	if err != nil {
		return err
	}

	input := new(usecase.ReviewRequestInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}
	input.RequestID = requestID
	input.ReviewerID = reviewerID
	input.ReviewerRole = middleware.CurrentRole(c)

	output := h.uc.ReviewRequest(c.Request().Context(), input)
	h.metrics.RecordOutcome(opReviewRequest, output.Outcome)

	return response.FromOutcome(c, http.StatusOK, output.Outcome, output)
}
