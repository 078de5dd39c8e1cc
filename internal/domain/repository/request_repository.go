package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRequestNotFound is returned when a request is not found.
var ErrRequestNotFound = errors.New("request not found")

// RequestRepository defines persistence for the administrator review queue.
type RequestRepository interface {
	// FindByID retrieves a single request.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Request, error)

	// FindByUserAndType retrieves the requests a user filed of the given type, newest first.
	FindByUserAndType(ctx context.Context, userID uuid.UUID, requestType entity.RequestType) ([]*entity.Request, error)

	// FindAll retrieves every request, newest first.
	FindAll(ctx context.Context) ([]*entity.Request, error)

	// Create persists a new request.
	Create(ctx context.Context, request *entity.Request) error

	// Update modifies an existing request.
	Update(ctx context.Context, request *entity.Request) error
}
