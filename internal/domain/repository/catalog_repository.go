package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
)

// ProductRepository defines the product operations the order workflow needs.
type ProductRepository interface {
	// AddStock increases the stock of a product by quantity.
	AddStock(ctx context.Context, productID uuid.UUID, quantity int) error
}

// CategoryRepository defines the category operations that approved requests apply.
type CategoryRepository interface {
	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// Update modifies name and description of an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
