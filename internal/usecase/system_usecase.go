package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/policy"
)

// InitializeSystemInput defines the data required to create the first administrator.
type InitializeSystemInput struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// InitializeSystemOutput returns the administrator that bootstrapped the system.
type InitializeSystemOutput struct {
	Outcome
	Admin *entity.User `json:"admin"`
}

// SystemStatusOutput reports whether the system has an administrator.
type SystemStatusOutput struct {
	Outcome
	Status policy.SystemStatus `json:"status"`
}

// SystemUsecase bootstraps the system with its single administrator.
type SystemUsecase interface {
	InitializeSystem(ctx context.Context, input *InitializeSystemInput) *InitializeSystemOutput
	// CheckInitializationStatus never fails; on repository errors it reports
	// that the system needs initialization.
	CheckInitializationStatus(ctx context.Context) *SystemStatusOutput
}
