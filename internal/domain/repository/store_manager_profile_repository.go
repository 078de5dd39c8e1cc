package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when a user has no store manager profile.
var ErrProfileNotFound = errors.New("store manager profile not found")

// StoreManagerProfileRepository defines persistence for store manager profiles.
type StoreManagerProfileRepository interface {
	// FindByUserID retrieves the profile paired with a store manager user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.StoreManagerProfile, error)

	// Create persists a new profile.
	Create(ctx context.Context, profile *entity.StoreManagerProfile) error

	// Update modifies an existing profile.
	Update(ctx context.Context, profile *entity.StoreManagerProfile) error
}
