// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
)

// StoreNamePlaceholder is used when a store manager registers without store details.
const StoreNamePlaceholder = "TBD"

// StoreManagerProfile holds data specific to the "store_manager" role.
// It is correlated with its User by UserID and persisted independently.
type StoreManagerProfile struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	IsApproved   bool       `json:"is_approved"`
	ApprovedAt   *time.Time `json:"approved_at"`
	ApprovedBy   *uuid.UUID `json:"approved_by"`
	StoreName    string     `json:"store_name"`
	StoreAddress string     `json:"store_address"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// NewStoreManagerProfileParams is the plain-data bag used to construct a profile.
type NewStoreManagerProfileParams struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	StoreName    string
	StoreAddress string
	Notes        string
}

// NewStoreManagerProfile builds an unapproved profile.
func NewStoreManagerProfile(params NewStoreManagerProfileParams, now time.Time) *StoreManagerProfile {
	id := params.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &StoreManagerProfile{
		ID:           id,
		UserID:       params.UserID,
		StoreName:    orPlaceholder(params.StoreName),
		StoreAddress: orPlaceholder(params.StoreAddress),
		Notes:        params.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// CanLogin reports whether the store manager may sign in.
func (p *StoreManagerProfile) CanLogin() bool {
	return p.IsApproved
}

// Approve marks the profile as approved by approverID.
// Approving an already approved profile is an error.
func (p *StoreManagerProfile) Approve(approverID uuid.UUID, now time.Time) error {
	if p.IsApproved {
		return domainerrors.ErrProfileAlreadyApproved
	}

	p.IsApproved = true
	p.ApprovedAt = &now
	p.ApprovedBy = &approverID
	p.UpdatedAt = now

	return nil
}

// RevokeApproval withdraws a previous approval.
// Revoking a profile that is not approved is an error.
func (p *StoreManagerProfile) RevokeApproval(now time.Time) error {
	if !p.IsApproved {
		return domainerrors.ErrProfileNotApproved
	}

	p.IsApproved = false
	p.ApprovedAt = nil
	p.ApprovedBy = nil
	p.UpdatedAt = now

	return nil
}

// UpdateStoreDetails replaces the store name and address.
func (p *StoreManagerProfile) UpdateStoreDetails(storeName, storeAddress string, now time.Time) {
	p.StoreName = orPlaceholder(storeName)
	p.StoreAddress = orPlaceholder(storeAddress)
	p.UpdatedAt = now
}

func orPlaceholder(value string) string {
	if value == "" {
		return StoreNamePlaceholder
	}

	return value
}
