// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable catalog item with an on-hand stock count.
type Product struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	CategoryID *uuid.UUID      `json:"category_id"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
	Unit       string          `json:"unit,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// UpdatePrice replaces the price. Zero and negative prices are rejected.
func (p *Product) UpdatePrice(price decimal.Decimal, now time.Time) error {
	if !price.IsPositive() {
		return domainerrors.ErrInvalidPrice
	}
	p.Price = price
	p.UpdatedAt = now

	return nil
}

// AddStock increases the on-hand stock.
func (p *Product) AddStock(quantity int, now time.Time) error {
	if quantity <= 0 {
		return domainerrors.ErrInvalidQuantity
	}
	p.Stock += quantity
	p.UpdatedAt = now

	return nil
}

// ReduceStock decreases the on-hand stock, refusing to go below zero.
func (p *Product) ReduceStock(quantity int, now time.Time) error {
	if quantity <= 0 {
		return domainerrors.ErrInvalidQuantity
	}
	if quantity > p.Stock {
		return domainerrors.ErrInsufficientStock
	}
	p.Stock -= quantity
	p.UpdatedAt = now

	return nil
}

// IsInStock reports whether at least one unit is available.
func (p *Product) IsInStock() bool {
	return p.Stock > 0
}
