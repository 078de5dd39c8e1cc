package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterStoreManagerInput defines the data required to apply as a store manager.
type RegisterStoreManagerInput struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
	Phone        string `json:"phone"`
	StoreName    string `json:"store_name"`
	StoreAddress string `json:"store_address"`
}

// RegisterStoreManagerOutput returns the user, profile and review request created together.
type RegisterStoreManagerOutput struct {
	Outcome
	User    *entity.User                `json:"user"`
	Profile *entity.StoreManagerProfile `json:"profile"`
	Request *entity.Request             `json:"request"`
}

// StoreManagerRegistrationUsecase registers store managers pending approval.
type StoreManagerRegistrationUsecase interface {
	RegisterStoreManager(ctx context.Context, input *RegisterStoreManagerInput) *RegisterStoreManagerOutput
}

// PendingRequestsOutput lists requests waiting for review.
type PendingRequestsOutput struct {
	Outcome
	Requests []*entity.Request `json:"requests"`
}

// RequestReviewOutput returns a reviewed request and, for store manager
// requests, the paired profile.
type RequestReviewOutput struct {
	Outcome
	Request *entity.Request             `json:"request"`
	Profile *entity.StoreManagerProfile `json:"profile,omitempty"`
}

// StoreManagerRequestUsecase lets the administrator work the store manager review queue.
type StoreManagerRequestUsecase interface {
	GetPendingRequests(ctx context.Context, adminID uuid.UUID) *PendingRequestsOutput
	ApproveRequest(ctx context.Context, requestID, adminID uuid.UUID, note string) *RequestReviewOutput
	RejectRequest(ctx context.Context, requestID, adminID uuid.UUID, reason string) *RequestReviewOutput
	GetSystemStatus(ctx context.Context, adminID uuid.UUID) *SystemStatusOutput
}

// ReviewAction is the decision taken on a request.
type ReviewAction string

const (
	ReviewActionApprove ReviewAction = "approve"
	ReviewActionReject  ReviewAction = "reject"
)

// IsValid checks if the ReviewAction is a valid value.
func (a ReviewAction) IsValid() bool {
	return a == ReviewActionApprove || a == ReviewActionReject
}

// ReviewRequestInput defines a reviewer's decision on any request type.
type ReviewRequestInput struct {
	RequestID    uuid.UUID
	ReviewerID   uuid.UUID
	ReviewerRole entity.Role
	Action       ReviewAction `json:"action" validate:"required,oneof=approve reject"`
	Reason       string       `json:"reason"`
	Note         string       `json:"note"`
}

// RequestReviewUsecase applies a review decision and its type-specific side effects.
type RequestReviewUsecase interface {
	ReviewRequest(ctx context.Context, input *ReviewRequestInput) *RequestReviewOutput
}
