package entity

import (
	"testing"
	"time"

	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_Defaults(t *testing.T) {
	user := NewUser(NewUserParams{Email: "  Shopper@Example.COM ", Name: " Sam ", PasswordHash: "h"}, orderTestNow)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "shopper@example.com", user.Email)
	assert.Equal(t, "Sam", user.Name)
	assert.Equal(t, RoleCustomer, user.Role)
	assert.True(t, user.IsCustomer())
	assert.True(t, user.IsValid())
}

func TestUser_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		params NewUserParams
		want   bool
	}{
		{name: "valid", params: NewUserParams{Email: "a@b.com", Name: "A", PasswordHash: "h", Role: RoleAdmin}, want: true},
		{name: "bad email", params: NewUserParams{Email: "not-an-email", Name: "A", PasswordHash: "h"}, want: false},
		{name: "blank name", params: NewUserParams{Email: "a@b.com", Name: " ", PasswordHash: "h"}, want: false},
		{name: "no password hash", params: NewUserParams{Email: "a@b.com", Name: "A"}, want: false},
		{name: "unknown role", params: NewUserParams{Email: "a@b.com", Name: "A", PasswordHash: "h", Role: Role("root")}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewUser(tt.params, orderTestNow).IsValid())
		})
	}
}

func TestUser_LoginLock(t *testing.T) {
	user := NewUser(NewUserParams{Email: "a@b.com", Name: "A", PasswordHash: "h"}, orderTestNow)

	assert.Equal(t, 1, user.IncrementLoginAttempts(orderTestNow))
	assert.Equal(t, 2, user.IncrementLoginAttempts(orderTestNow))
	assert.False(t, user.IsAccountLocked(orderTestNow))

	until := orderTestNow.Add(30 * time.Minute)
	user.LockAccount(until, orderTestNow)
	assert.True(t, user.IsAccountLocked(orderTestNow))
	assert.True(t, user.IsAccountLocked(until.Add(-time.Second)))
	assert.False(t, user.IsAccountLocked(until))

	user.RecordLogin(until)
	assert.Zero(t, user.LoginAttempts)
	assert.Nil(t, user.LockedUntil)
	require.NotNil(t, user.LastLoginAt)
	assert.Equal(t, until, *user.LastLoginAt)
}

func TestUser_IncrementLoginAttemptsAfterExpiredLock(t *testing.T) {
	user := NewUser(NewUserParams{Email: "a@b.com", Name: "A", PasswordHash: "h"}, orderTestNow)
	user.LoginAttempts = 5
	until := orderTestNow.Add(30 * time.Minute)
	user.LockAccount(until, orderTestNow)

	assert.Equal(t, 6, user.IncrementLoginAttempts(until.Add(-time.Second)))
	require.NotNil(t, user.LockedUntil)

	assert.Equal(t, 1, user.IncrementLoginAttempts(until))
	assert.Nil(t, user.LockedUntil)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "manager@shop.com", NormalizeEmail("  Manager@Shop.COM\t"))
	assert.Equal(t, "manager@shop.com", NewUser(NewUserParams{Email: "Manager@Shop.com"}, orderTestNow).Email)
}

func TestUser_Verification(t *testing.T) {
	user := NewUser(NewUserParams{Email: "a@b.com", Name: "A", PasswordHash: "h"}, orderTestNow)

	require.NoError(t, user.VerifyEmail(orderTestNow))
	assert.True(t, user.IsEmailVerified)
	assert.ErrorIs(t, user.VerifyEmail(orderTestNow), domainerrors.ErrEmailAlreadyVerified)

	require.NoError(t, user.VerifyPhone(orderTestNow))
	assert.ErrorIs(t, user.VerifyPhone(orderTestNow), domainerrors.ErrPhoneAlreadyVerified)
}

func TestRolesFromStrings(t *testing.T) {
	roles := RolesFromStrings([]string{"admin", "root", "store_manager"})

	assert.Equal(t, Roles{RoleAdmin, RoleStoreManager}, roles)
	assert.True(t, roles.Contains(RoleAdmin))
	assert.False(t, roles.Contains(RoleCustomer))
	assert.Equal(t, []string{"admin", "store_manager"}, roles.ToStrings())
}
