package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// StoreManagerRequestHandler serves the administrator review queue.
type StoreManagerRequestHandler struct {
	uc      usecase.StoreManagerRequestUsecase
	metrics OutcomeRecorder
}

// NewStoreManagerRequestHandler is the constructor for StoreManagerRequestHandler, injected by Fx.
func NewStoreManagerRequestHandler(uc usecase.StoreManagerRequestUsecase, metrics OutcomeRecorder) *StoreManagerRequestHandler {
	return &StoreManagerRequestHandler{uc: uc, metrics: metrics}
}

type approveRequestBody struct {
	Note string `json:"note"`
}

type rejectRequestBody struct {
	Reason string `json:"reason" validate:"required"`
}

// ListPending returns store manager registrations awaiting review.
func (h *StoreManagerRequestHandler) ListPending(c echo.Context) error {
	adminID, err := caller(c)
	if err != nil {
		return err
	}

	output := h.uc.GetPendingRequests(c.Request().Context(), adminID)
	h.metrics.RecordOutcome(opListPendingRequests, output.Outcome)

	return response.FromOutcome(c, http.StatusOK, output.Outcome, output.Requests)
}

// Approve approves a registration request.
func (h *StoreManagerRequestHandler) Approve(c echo.Context) error {
	adminID, err := caller(c)
	if err != nil {
		return err
	}
	requestID, err := pathID(c)
	if err != nil {
		return err
	}

	body := new(approveRequestBody)
	if err := bindAndValidate(c, body); err != nil {
		return err
	}

	output := h.uc.ApproveRequest(c.Request().Context(), requestID, adminID, body.Note)
	h.metrics.RecordOutcome(opApproveRequest, output.Outcome)

	return response.FromOutcome(c, http.StatusOK, output.Outcome, output)
}

// Reject rejects a registration request with a reason.
func (h *StoreManagerRequestHandler) Reject(c echo.Context) error {
	adminID, err := caller(c)
	if err != nil {
		return err
	}
	requestID, err := pathID(c)
	if err != nil {
		return err
	}

	body := new(rejectRequestBody)
	if err := bindAndValidate(c, body); err != nil {
		return err
	}

	output := h.uc.RejectRequest(c.Request().Context(), requestID, adminID, body.Reason)
	h.metrics.RecordOutcome(opRejectRequest, output.Outcome)

	return response.FromOutcome(c, http.StatusOK, output.Outcome, output)
}

// SystemStatus reports administrator and store manager counts.
func (h *StoreManagerRequestHandler) SystemStatus(c echo.Context) error {
	adminID, err := caller(c)
	if err != nil {
		return err
	}

	output := h.uc.GetSystemStatus(c.Request().Context(), adminID)
	h.metrics.RecordOutcome(opAdminSystemStatus, output.Outcome)

	return response.FromOutcome(c, http.StatusOK, output.Outcome, output.Status)
}
