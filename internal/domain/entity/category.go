// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products in the catalog.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryFromRequest builds the category described by a category request payload.
// An "id" key, when present and parseable, identifies the existing category.
func CategoryFromRequest(data RequestData, now time.Time) *Category {
	category := &Category{
		Name:        data.String("name"),
		Description: data.String("description"),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if id, err := uuid.Parse(data.String("id")); err == nil {
		category.ID = id
	}

	return category
}
