package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput returns the authenticated user and the generated tokens.
type LoginOutput struct {
	Outcome
	User         *entity.User                `json:"user"`
	Profile      *entity.StoreManagerProfile `json:"profile,omitempty"`
	AccessToken  string                      `json:"access_token,omitempty"`
	RefreshToken string                      `json:"refresh_token,omitempty"`
}

// AuthUsecase authenticates users, enforcing lockout and store manager approval.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) *LoginOutput
}
