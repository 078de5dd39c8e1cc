package policy

import (
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

// StoreManagerData is the registration payload a store manager submits.
type StoreManagerData struct {
	Name         string
	Email        string
	Phone        string
	StoreName    string
	StoreAddress string
}

// StoreData carries optional store details for a new profile.
type StoreData struct {
	StoreName    string
	StoreAddress string
}

// StoreManagerApprovalPolicy layers the store manager approval workflow on
// top of the administrator rules.
type StoreManagerApprovalPolicy struct {
	admin *AdminManagementPolicy
	clock service.Clock
}

// NewStoreManagerApprovalPolicy creates the policy.
func NewStoreManagerApprovalPolicy(admin *AdminManagementPolicy, clock service.Clock) *StoreManagerApprovalPolicy {
	return &StoreManagerApprovalPolicy{admin: admin, clock: clock}
}

// CanRegisterAsStoreManager requires an administrator to exist and the
// applicant to provide an email and a name.
func (p *StoreManagerApprovalPolicy) CanRegisterAsStoreManager(data StoreManagerData, users []*entity.User) Decision {
	if decision := p.admin.CanRegisterStoreManager(users); !decision.Allowed {
		return decision
	}
	if strings.TrimSpace(data.Email) == "" || strings.TrimSpace(data.Name) == "" {
		return Deny(ReasonMissingIdentity)
	}

	return Allow()
}

// CreateStoreManagerApprovalRequest builds the pending request an administrator reviews.
func (p *StoreManagerApprovalPolicy) CreateStoreManagerApprovalRequest(data StoreManagerData, requestedBy uuid.UUID) *entity.Request {
	return entity.NewRequest(entity.NewRequestParams{
		Type:        entity.RequestTypeAccountRegister,
		RequestedBy: requestedBy,
		RequestData: entity.RequestData{
			"name":         data.Name,
			"email":        entity.NormalizeEmail(data.Email),
			"phone":        data.Phone,
			"storeName":    placeholder(data.StoreName),
			"storeAddress": placeholder(data.StoreAddress),
			"role":         entity.RoleStoreManager.String(),
		},
	}, p.clock.Now())
}

// CreateStoreManagerProfile builds the unapproved profile paired with userID.
func (p *StoreManagerApprovalPolicy) CreateStoreManagerProfile(userID uuid.UUID, store StoreData) *entity.StoreManagerProfile {
	return entity.NewStoreManagerProfile(entity.NewStoreManagerProfileParams{
		UserID:       userID,
		StoreName:    store.StoreName,
		StoreAddress: store.StoreAddress,
	}, p.clock.Now())
}

// CanUserLogin refuses locked accounts, and store managers whose profile is
// missing or not yet approved.
func (p *StoreManagerApprovalPolicy) CanUserLogin(user *entity.User, profile *entity.StoreManagerProfile) Decision {
	if user == nil {
		return Deny(ReasonNotAuthenticated)
	}
	if user.IsAccountLocked(p.clock.Now()) {
		return Deny(ReasonAccountLocked)
	}

	switch user.Role {
	case entity.RoleAdmin, entity.RoleCustomer:
		return Allow()
	case entity.RoleStoreManager:
		if profile == nil {
			return Deny(ReasonProfileNotFound)
		}
		if !profile.CanLogin() {
			return Deny(ReasonPendingApproval)
		}

		return Allow()
	default:
		return Deny(ReasonUnsupportedRole)
	}
}

// ApproveStoreManager approves profile on behalf of approver.
// Entity errors such as a double approval are reported, not returned.
func (p *StoreManagerApprovalPolicy) ApproveStoreManager(profile *entity.StoreManagerProfile, approver *entity.User) ApprovalResult {
	if decision := p.admin.CanApproveStoreManagerRequests(approver); !decision.Allowed {
		return approvalFailed(decision.Reason)
	}
	if profile == nil {
		return approvalFailed(ReasonProfileNotFound)
	}

	if err := profile.Approve(approver.ID, p.clock.Now()); err != nil {
		return approvalFailed(err.Error())
	}

	return approvalSucceeded("Store manager approved successfully")
}

// RejectStoreManager records the rejection on profile and withdraws any
// existing approval.
func (p *StoreManagerApprovalPolicy) RejectStoreManager(profile *entity.StoreManagerProfile, approver *entity.User, reason string) ApprovalResult {
	if decision := p.admin.CanApproveStoreManagerRequests(approver); !decision.Allowed {
		return approvalFailed(decision.Reason)
	}
	if profile == nil {
		return approvalFailed(ReasonProfileNotFound)
	}

	now := p.clock.Now()
	if profile.IsApproved {
		if err := profile.RevokeApproval(now); err != nil {
			return approvalFailed(err.Error())
		}
	}
	if reason != "" {
		profile.Notes = reason
		profile.UpdatedAt = now
	}

	return approvalSucceeded("Store manager rejected")
}

// ApproveStoreManagerRequest approves request and its paired profile together.
// When the profile step fails the request approval is rolled back in memory,
// so the caller persists both entities only on success.
func (p *StoreManagerApprovalPolicy) ApproveStoreManagerRequest(
	request *entity.Request,
	profile *entity.StoreManagerProfile,
	approver *entity.User,
	note string,
) ApprovalResult {
	if decision := p.admin.CanApproveStoreManagerRequests(approver); !decision.Allowed {
		return approvalFailed(decision.Reason)
	}
	if request == nil || !request.IsStoreManagerApprovalRequest() {
		return approvalFailed(ReasonNotApprovalRequest)
	}
	if !request.CanBeReviewed() {
		return approvalFailed(ReasonAlreadyReviewed)
	}

	if !request.Approve(approver.ID, note, p.clock.Now()) {
		return approvalFailed(ReasonAlreadyReviewed)
	}

	result := p.ApproveStoreManager(profile, approver)
	if !result.Success {
		request.RollbackReview(p.clock.Now())

		return result
	}

	return approvalSucceeded("Store manager request approved successfully")
}

// GetApprovalStatusMessage describes where user stands in the approval workflow.
func (p *StoreManagerApprovalPolicy) GetApprovalStatusMessage(user *entity.User, profile *entity.StoreManagerProfile) string {
	if user == nil {
		return "Unknown user"
	}

	switch user.Role {
	case entity.RoleAdmin:
		return "Administrator account is active"
	case entity.RoleCustomer:
		return "Customer account is active"
	case entity.RoleStoreManager:
		if profile == nil {
			return "Store manager profile not found. Please contact support."
		}
		if profile.IsApproved {
			return "Store manager account is approved"
		}

		return "Store manager account is pending approval by an administrator"
	default:
		return "Unknown account status"
	}
}

// GetPendingStoreManagerRequests keeps the pending store manager registration requests.
func (p *StoreManagerApprovalPolicy) GetPendingStoreManagerRequests(requests []*entity.Request) []*entity.Request {
	pending := make([]*entity.Request, 0, len(requests))
	for _, request := range requests {
		if request != nil && request.IsStoreManagerApprovalRequest() && request.IsPending() {
			pending = append(pending, request)
		}
	}

	return pending
}

func placeholder(value string) string {
	if strings.TrimSpace(value) == "" {
		return entity.StoreNamePlaceholder
	}

	return value
}
