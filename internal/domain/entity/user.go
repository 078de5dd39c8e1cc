// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
//
// Entities are plain data holders with validation predicates and guarded
// state-transition methods. They never touch repositories; the caller supplies
// the current time so that every transition is deterministic.
package entity

import (
	"net/mail"
	"strings"
	"time"

	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
type User struct {
	ID              uuid.UUID  `json:"id"`                    // The Global Unique Identifier (GUID) for the user.
	Email           string     `json:"email"`                 // Login identifier, unique system-wide.
	Name            string     `json:"name"`                  // The user's display name or real name.
	PasswordHash    string     `json:"-"`                     // Never serialized; persistence mapping carries it explicitly.
	Phone           string     `json:"phone,omitempty"`       // Optional contact phone.
	Address         string     `json:"address,omitempty"`     // Optional postal address.
	Role            Role       `json:"role"`                  // admin, store_manager or customer.
	IsEmailVerified bool       `json:"is_email_verified"`     // Whether the email was confirmed.
	IsPhoneVerified bool       `json:"is_phone_verified"`     // Whether the phone was confirmed.
	LastLoginAt     *time.Time `json:"last_login_at"`         // Timestamp of the last successful login.
	LoginAttempts   int        `json:"login_attempts"`        // Consecutive failed login attempts.
	LockedUntil     *time.Time `json:"locked_until"`          // Login is refused until this instant.
	CreatedAt       time.Time  `json:"created_at"`            // Timestamp of when this user account was created.
	UpdatedAt       time.Time  `json:"updated_at"`            // Timestamp of the last modification to this user's data.
}

// NewUserParams is the plain-data bag used to construct a User.
type NewUserParams struct {
	ID              uuid.UUID
	Email           string
	Name            string
	PasswordHash    string
	Phone           string
	Address         string
	Role            Role
	IsEmailVerified bool
}

// NormalizeEmail returns the canonical form of an email address. Stored
// emails and every lookup key use this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewUser builds a User, filling defaults for absent fields.
func NewUser(params NewUserParams, now time.Time) *User {
	id := params.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	role := params.Role
	if role == "" {
		role = RoleCustomer
	}

	return &User{
		ID:              id,
		Email:           NormalizeEmail(params.Email),
		Name:            strings.TrimSpace(params.Name),
		PasswordHash:    params.PasswordHash,
		Phone:           params.Phone,
		Address:         params.Address,
		Role:            role,
		IsEmailVerified: params.IsEmailVerified,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// IsValid reports whether the user carries the minimum data to be persisted.
func (u *User) IsValid() bool {
	if u == nil || strings.TrimSpace(u.Name) == "" || u.PasswordHash == "" {
		return false
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return false
	}

	return u.Role.IsValid()
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

func (u *User) IsStoreManager() bool { return u.Role == RoleStoreManager }

func (u *User) IsCustomer() bool { return u.Role == RoleCustomer }

// IsAccountLocked reports whether now falls before LockedUntil.
func (u *User) IsAccountLocked(now time.Time) bool {
	return u.LockedUntil != nil && now.Before(*u.LockedUntil)
}

// IncrementLoginAttempts records one more failed login and returns the new count.
// A lock that has already expired is cleared first and the count starts over.
func (u *User) IncrementLoginAttempts(now time.Time) int {
	if u.LockedUntil != nil && !now.Before(*u.LockedUntil) {
		u.LockedUntil = nil
		u.LoginAttempts = 0
	}
	u.LoginAttempts++
	u.touch(now)

	return u.LoginAttempts
}

// LockAccount refuses logins until the given instant.
func (u *User) LockAccount(until, now time.Time) {
	u.LockedUntil = &until
	u.touch(now)
}

// RecordLogin resets the failure counter, clears any lock and stamps LastLoginAt.
func (u *User) RecordLogin(now time.Time) {
	u.LoginAttempts = 0
	u.LockedUntil = nil
	u.LastLoginAt = &now
	u.touch(now)
}

// VerifyEmail marks the email as verified. Verifying twice is an error.
func (u *User) VerifyEmail(now time.Time) error {
	if u.IsEmailVerified {
		return domainerrors.ErrEmailAlreadyVerified
	}
	u.IsEmailVerified = true
	u.touch(now)

	return nil
}

// VerifyPhone marks the phone as verified. Verifying twice is an error.
func (u *User) VerifyPhone(now time.Time) error {
	if u.IsPhoneVerified {
		return domainerrors.ErrPhoneAlreadyVerified
	}
	u.IsPhoneVerified = true
	u.touch(now)

	return nil
}

func (u *User) touch(now time.Time) {
	u.UpdatedAt = now
}
