package policy

import (
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

// Denial reasons shared with use cases and tests.
const (
	ReasonAdminExists        = "An administrator already exists. Only one administrator is allowed."
	ReasonNoAdministrator    = "No administrator exists in the system. Store manager registration requires an initialized system."
	ReasonNotAuthenticated   = "User is not authenticated"
	ReasonAdminOnly          = "Only administrators can perform this action"
	ReasonMissingIdentity    = "Email and name are required"
	ReasonAccountLocked      = "Account is temporarily locked due to too many failed login attempts"
	ReasonProfileNotFound    = "Store manager profile not found"
	ReasonPendingApproval    = "Store manager account is pending approval"
	ReasonUnsupportedRole    = "Unsupported user role"
	ReasonNotApprovalRequest = "Request is not a store manager approval request"
	ReasonAlreadyReviewed    = "Request has already been reviewed"
	ReasonRegistrationQueued = "A store manager registration for this email is already pending approval"
)

// AdminData carries the fields used to build the first administrator.
// PasswordHash must already be hashed.
type AdminData struct {
	Email        string
	Name         string
	PasswordHash string
	Phone        string
	Address      string
}

// SystemStatus summarises whether the system has been bootstrapped.
type SystemStatus struct {
	IsInitialized bool `json:"is_initialized"`
	NeedsAdmin    bool `json:"needs_admin"`
	AdminCount    int  `json:"admin_count"`
}

// AdminManagementPolicy enforces the single-administrator rule.
type AdminManagementPolicy struct {
	clock service.Clock
}

// NewAdminManagementPolicy creates the policy.
func NewAdminManagementPolicy(clock service.Clock) *AdminManagementPolicy {
	return &AdminManagementPolicy{clock: clock}
}

// HasAdmin reports whether any user holds the admin role.
func (p *AdminManagementPolicy) HasAdmin(users []*entity.User) bool {
	return countAdmins(users) > 0
}

// CanCreateAdmin allows a new administrator only while none exists.
func (p *AdminManagementPolicy) CanCreateAdmin(users []*entity.User) Decision {
	if p.HasAdmin(users) {
		return Deny(ReasonAdminExists)
	}

	return Allow()
}

// CanRegisterStoreManager gates store manager registration on system bootstrap.
func (p *AdminManagementPolicy) CanRegisterStoreManager(users []*entity.User) Decision {
	if !p.HasAdmin(users) {
		return Deny(ReasonNoAdministrator)
	}

	return Allow()
}

// CanViewStoreManagerRequests allows administrators only.
func (p *AdminManagementPolicy) CanViewStoreManagerRequests(user *entity.User) Decision {
	return requireAdmin(user)
}

// CanApproveStoreManagerRequests allows administrators only.
func (p *AdminManagementPolicy) CanApproveStoreManagerRequests(user *entity.User) Decision {
	return requireAdmin(user)
}

// CreateFirstAdmin builds a verified administrator. It does not persist.
func (p *AdminManagementPolicy) CreateFirstAdmin(data AdminData) *entity.User {
	return entity.NewUser(entity.NewUserParams{
		ID:              uuid.New(),
		Email:           data.Email,
		Name:            data.Name,
		PasswordHash:    data.PasswordHash,
		Phone:           data.Phone,
		Address:         data.Address,
		Role:            entity.RoleAdmin,
		IsEmailVerified: true,
	}, p.clock.Now())
}

// GetSystemStatus reports bootstrap state for the given population.
func (p *AdminManagementPolicy) GetSystemStatus(users []*entity.User) SystemStatus {
	admins := countAdmins(users)

	return SystemStatus{
		IsInitialized: admins > 0,
		NeedsAdmin:    admins == 0,
		AdminCount:    admins,
	}
}

func requireAdmin(user *entity.User) Decision {
	if user == nil || user.ID == uuid.Nil {
		return Deny(ReasonNotAuthenticated)
	}
	if !user.IsAdmin() {
		return Deny(ReasonAdminOnly)
	}

	return Allow()
}

func countAdmins(users []*entity.User) int {
	count := 0
	for _, user := range users {
		if user != nil && user.IsAdmin() {
			count++
		}
	}

	return count
}
