package policy

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/clock"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApprovalPolicy(c *clock.Fixed) *StoreManagerApprovalPolicy {
	return NewStoreManagerApprovalPolicy(NewAdminManagementPolicy(c), c)
}

func newRegistration(p *StoreManagerApprovalPolicy) (*entity.User, *entity.StoreManagerProfile, *entity.Request) {
	manager := newPolicyUser(entity.RoleStoreManager)
	data := StoreManagerData{Name: "M", Email: "m@s.com", Phone: "1"}

	return manager,
		p.CreateStoreManagerProfile(manager.ID, StoreData{}),
		p.CreateStoreManagerApprovalRequest(data, manager.ID)
}

func TestStoreManagerApprovalPolicy_CanRegisterAsStoreManager(t *testing.T) {
	p := newApprovalPolicy(clock.NewFixed(policyTestNow))
	admins := []*entity.User{newPolicyUser(entity.RoleAdmin)}

	decision := p.CanRegisterAsStoreManager(StoreManagerData{Name: "M", Email: "m@s.com"}, nil)
	assert.False(t, decision.Allowed)
	assert.Equal(t, ReasonNoAdministrator, decision.Reason)

	decision = p.CanRegisterAsStoreManager(StoreManagerData{Name: "M"}, admins)
	assert.False(t, decision.Allowed)
	assert.Equal(t, ReasonMissingIdentity, decision.Reason)

	assert.True(t, p.CanRegisterAsStoreManager(StoreManagerData{Name: "M", Email: "m@s.com"}, admins).Allowed)
}

func TestStoreManagerApprovalPolicy_CreateApprovalRequest(t *testing.T) {
	p := newApprovalPolicy(clock.NewFixed(policyTestNow))
	manager, profile, request := newRegistration(p)

	assert.Equal(t, entity.RequestTypeAccountRegister, request.Type)
	assert.Equal(t, entity.RequestStatusPending, request.Status)
	assert.Equal(t, manager.ID, request.RequestedBy)
	assert.Equal(t, entity.StoreNamePlaceholder, request.RequestData.String("storeName"))
	assert.Equal(t, "store_manager", request.RequestData.String("role"))
	assert.True(t, request.HasValidRequestData())
	assert.Equal(t, policyTestNow, request.CreatedAt)

	assert.Equal(t, manager.ID, profile.UserID)
	assert.False(t, profile.IsApproved)
}

func TestStoreManagerApprovalPolicy_CreateApprovalRequest_NormalizesEmail(t *testing.T) {
	p := newApprovalPolicy(clock.NewFixed(policyTestNow))

	request := p.CreateStoreManagerApprovalRequest(StoreManagerData{Name: "M", Email: " Manager@Shop.com ", Phone: "1"}, uuid.New())

	assert.Equal(t, "manager@shop.com", request.RequestData.String("email"))
}

func TestStoreManagerApprovalPolicy_CanUserLogin(t *testing.T) {
	c := clock.NewFixed(policyTestNow)
	p := newApprovalPolicy(c)

	approved := entity.NewStoreManagerProfile(entity.NewStoreManagerProfileParams{UserID: uuid.New()}, policyTestNow)
	require.NoError(t, approved.Approve(uuid.New(), policyTestNow))
	pending := entity.NewStoreManagerProfile(entity.NewStoreManagerProfileParams{UserID: uuid.New()}, policyTestNow)

	locked := func(role entity.Role) *entity.User {
		user := newPolicyUser(role)
		user.LockAccount(policyTestNow.Add(time.Minute), policyTestNow)

		return user
	}

	tests := []struct {
		name    string
		user    *entity.User
		profile *entity.StoreManagerProfile
		reason  string
	}{
		{name: "admin", user: newPolicyUser(entity.RoleAdmin)},
		{name: "customer", user: newPolicyUser(entity.RoleCustomer)},
		{name: "approved store manager", user: newPolicyUser(entity.RoleStoreManager), profile: approved},
		{name: "pending store manager", user: newPolicyUser(entity.RoleStoreManager), profile: pending, reason: "pending approval"},
		{name: "store manager without profile", user: newPolicyUser(entity.RoleStoreManager), reason: "profile not found"},
		{name: "locked admin", user: locked(entity.RoleAdmin), reason: "locked"},
		{name: "locked approved store manager", user: locked(entity.RoleStoreManager), profile: approved, reason: "locked"},
		{name: "unknown role", user: newPolicyUser(entity.Role("auditor")), reason: ReasonUnsupportedRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := p.CanUserLogin(tt.user, tt.profile)
			if tt.reason == "" {
				assert.True(t, decision.Allowed, decision.Reason)

				return
			}
			assert.False(t, decision.Allowed)
			assert.Contains(t, decision.Reason, tt.reason)
		})
	}
}

func TestStoreManagerApprovalPolicy_CanUserLogin_LockExpires(t *testing.T) {
	c := clock.NewFixed(policyTestNow)
	p := newApprovalPolicy(c)
	user := newPolicyUser(entity.RoleCustomer)
	user.LockAccount(policyTestNow.Add(30*time.Minute), policyTestNow)

	assert.False(t, p.CanUserLogin(user, nil).Allowed)

	c.Advance(30 * time.Minute)
	assert.True(t, p.CanUserLogin(user, nil).Allowed)
}

func TestStoreManagerApprovalPolicy_ApproveStoreManagerRequest(t *testing.T) {
	c := clock.NewFixed(policyTestNow)
	p := newApprovalPolicy(c)
	admin := newPolicyUser(entity.RoleAdmin)
	_, profile, request := newRegistration(p)

	c.Advance(time.Hour)
	result := p.ApproveStoreManagerRequest(request, profile, admin, "ok")

	require.True(t, result.Success, result.Message)
	assert.Equal(t, entity.RequestStatusApproved, request.Status)
	assert.Equal(t, policyTestNow.Add(time.Hour), *request.ReviewedAt)
	assert.True(t, profile.IsApproved)
	assert.Equal(t, admin.ID, *profile.ApprovedBy)
}

func TestStoreManagerApprovalPolicy_ApproveStoreManagerRequest_RollsBack(t *testing.T) {
	p := newApprovalPolicy(clock.NewFixed(policyTestNow))
	admin := newPolicyUser(entity.RoleAdmin)
	_, profile, request := newRegistration(p)
	require.NoError(t, profile.Approve(admin.ID, policyTestNow))

	result := p.ApproveStoreManagerRequest(request, profile, admin, "again")

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "already approved")
	assert.Equal(t, entity.RequestStatusPending, request.Status)
	assert.Nil(t, request.ReviewedBy)
	assert.Nil(t, request.ReviewedAt)
	assert.Empty(t, request.ReviewNote)
}

func TestStoreManagerApprovalPolicy_ApproveStoreManagerRequest_Refusals(t *testing.T) {
	p := newApprovalPolicy(clock.NewFixed(policyTestNow))
	admin := newPolicyUser(entity.RoleAdmin)

	_, profile, request := newRegistration(p)
	result := p.ApproveStoreManagerRequest(request, profile, newPolicyUser(entity.RoleStoreManager), "")
	assert.Equal(t, ReasonAdminOnly, result.Message)
	assert.True(t, request.IsPending())

	category := entity.NewRequest(entity.NewRequestParams{Type: entity.RequestTypeCategoryAdd}, policyTestNow)
	result = p.ApproveStoreManagerRequest(category, profile, admin, "")
	assert.Equal(t, ReasonNotApprovalRequest, result.Message)

	request.Reject(admin.ID, "no", policyTestNow)
	result = p.ApproveStoreManagerRequest(request, profile, admin, "")
	assert.Equal(t, ReasonAlreadyReviewed, result.Message)
	assert.False(t, profile.IsApproved)
}

func TestStoreManagerApprovalPolicy_RejectStoreManager(t *testing.T) {
	p := newApprovalPolicy(clock.NewFixed(policyTestNow))
	admin := newPolicyUser(entity.RoleAdmin)
	_, profile, _ := newRegistration(p)
	require.NoError(t, profile.Approve(admin.ID, policyTestNow))

	result := p.RejectStoreManager(profile, admin, "fraud report")

	require.True(t, result.Success)
	assert.False(t, profile.IsApproved)
	assert.Equal(t, "fraud report", profile.Notes)

	result = p.RejectStoreManager(nil, admin, "")
	assert.Equal(t, ReasonProfileNotFound, result.Message)
}

func TestStoreManagerApprovalPolicy_GetApprovalStatusMessage(t *testing.T) {
	p := newApprovalPolicy(clock.NewFixed(policyTestNow))
	manager, profile, _ := newRegistration(p)

	assert.Contains(t, p.GetApprovalStatusMessage(manager, profile), "pending approval")
	assert.Contains(t, p.GetApprovalStatusMessage(manager, nil), "not found")
	require.NoError(t, profile.Approve(uuid.New(), policyTestNow))
	assert.Equal(t, "Store manager account is approved", p.GetApprovalStatusMessage(manager, profile))
	assert.Equal(t, "Administrator account is active", p.GetApprovalStatusMessage(newPolicyUser(entity.RoleAdmin), nil))
}

func TestStoreManagerApprovalPolicy_GetPendingStoreManagerRequests(t *testing.T) {
	p := newApprovalPolicy(clock.NewFixed(policyTestNow))
	_, _, pending := newRegistration(p)
	_, _, approved := newRegistration(p)
	approved.Approve(uuid.New(), "", policyTestNow)
	category := entity.NewRequest(entity.NewRequestParams{Type: entity.RequestTypeCategoryAdd}, policyTestNow)

	got := p.GetPendingStoreManagerRequests([]*entity.Request{pending, approved, category, nil})

	assert.Equal(t, []*entity.Request{pending}, got)
}

func TestStoreManagerApprovalPolicy_UsesInjectedClock(t *testing.T) {
	c := mockSvc.NewMockClock(t)
	c.EXPECT().Now().Return(policyTestNow.Add(42 * time.Minute))
	p := NewStoreManagerApprovalPolicy(NewAdminManagementPolicy(c), c)

	profile := p.CreateStoreManagerProfile(uuid.New(), StoreData{StoreName: "Corner Shop"})

	assert.Equal(t, policyTestNow.Add(42*time.Minute), profile.CreatedAt)
	assert.Equal(t, "Corner Shop", profile.StoreName)
}
