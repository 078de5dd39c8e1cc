package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler holds dependencies for registration and login.
type AuthHandler struct {
	authUC         usecase.AuthUsecase
	registrationUC usecase.StoreManagerRegistrationUsecase
	metrics        OutcomeRecorder
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(
	authUC usecase.AuthUsecase,
	registrationUC usecase.StoreManagerRegistrationUsecase,
	metrics OutcomeRecorder,
) *AuthHandler {
	return &AuthHandler{
		authUC:         authUC,
		registrationUC: registrationUC,
		metrics:        metrics,
	}
}

// RegisterStoreManager submits a store manager application for review.
func (h *AuthHandler) RegisterStoreManager(c echo.Context) error {
	input := new(usecase.RegisterStoreManagerInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	output := h.registrationUC.RegisterStoreManager(c.Request().Context(), input)
	h.metrics.RecordOutcome(opRegisterStoreManager, output.Outcome)

	return response.FromOutcome(c, http.StatusCreated, output.Outcome, output)
}

// Login exchanges credentials for a token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	output := h.authUC.Login(c.Request().Context(), input)
	h.metrics.RecordOutcome(opLogin, output.Outcome)

	return response.FromOutcome(c, http.StatusOK, output.Outcome, output)
}
