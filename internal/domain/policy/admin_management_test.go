package policy

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var policyTestNow = time.Date(2026, time.January, 5, 8, 0, 0, 0, time.UTC)

func newPolicyUser(role entity.Role) *entity.User {
	return entity.NewUser(entity.NewUserParams{
		ID:           uuid.New(),
		Email:        string(role) + "@example.com",
		Name:         string(role),
		PasswordHash: "hash",
		Role:         role,
	}, policyTestNow)
}

func TestAdminManagementPolicy_CanCreateAdmin(t *testing.T) {
	p := NewAdminManagementPolicy(clock.NewFixed(policyTestNow))

	assert.True(t, p.CanCreateAdmin(nil).Allowed)
	assert.True(t, p.CanCreateAdmin([]*entity.User{newPolicyUser(entity.RoleCustomer), newPolicyUser(entity.RoleStoreManager)}).Allowed)

	decision := p.CanCreateAdmin([]*entity.User{newPolicyUser(entity.RoleCustomer), newPolicyUser(entity.RoleAdmin)})
	assert.False(t, decision.Allowed)
	assert.Equal(t, ReasonAdminExists, decision.Reason)
}

func TestAdminManagementPolicy_CanRegisterStoreManager(t *testing.T) {
	p := NewAdminManagementPolicy(clock.NewFixed(policyTestNow))

	decision := p.CanRegisterStoreManager([]*entity.User{newPolicyUser(entity.RoleCustomer)})
	assert.False(t, decision.Allowed)
	assert.Contains(t, decision.Reason, "No administrator exists")

	assert.True(t, p.CanRegisterStoreManager([]*entity.User{newPolicyUser(entity.RoleAdmin)}).Allowed)
}

func TestAdminManagementPolicy_CanApproveStoreManagerRequests(t *testing.T) {
	p := NewAdminManagementPolicy(clock.NewFixed(policyTestNow))
	anonymous := newPolicyUser(entity.RoleAdmin)
	anonymous.ID = uuid.Nil

	tests := []struct {
		name   string
		user   *entity.User
		reason string
	}{
		{name: "nil user", user: nil, reason: ReasonNotAuthenticated},
		{name: "missing id", user: anonymous, reason: ReasonNotAuthenticated},
		{name: "store manager", user: newPolicyUser(entity.RoleStoreManager), reason: ReasonAdminOnly},
		{name: "customer", user: newPolicyUser(entity.RoleCustomer), reason: ReasonAdminOnly},
		{name: "admin", user: newPolicyUser(entity.RoleAdmin)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := p.CanApproveStoreManagerRequests(tt.user)
			assert.Equal(t, tt.reason == "", decision.Allowed)
			assert.Equal(t, tt.reason, decision.Reason)
			assert.Equal(t, decision, p.CanViewStoreManagerRequests(tt.user))
		})
	}
}

func TestAdminManagementPolicy_CreateFirstAdmin(t *testing.T) {
	p := NewAdminManagementPolicy(clock.NewFixed(policyTestNow))

	admin := p.CreateFirstAdmin(AdminData{Email: "Root@Example.com", Name: "Root", PasswordHash: "hash"})

	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.Equal(t, "root@example.com", admin.Email)
	assert.True(t, admin.IsEmailVerified)
	assert.Equal(t, policyTestNow, admin.CreatedAt)
	assert.True(t, admin.IsValid())
}

func TestAdminManagementPolicy_GetSystemStatus(t *testing.T) {
	p := NewAdminManagementPolicy(clock.NewFixed(policyTestNow))

	assert.Equal(t, SystemStatus{IsInitialized: false, NeedsAdmin: true}, p.GetSystemStatus(nil))
	assert.Equal(t,
		SystemStatus{IsInitialized: true, NeedsAdmin: false, AdminCount: 1},
		p.GetSystemStatus([]*entity.User{newPolicyUser(entity.RoleAdmin), newPolicyUser(entity.RoleCustomer), nil}),
	)
}
