// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestType identifies what a Request asks an administrator to do.
type RequestType string

const (
	RequestTypeAccountRegister RequestType = "account_register_request"
	RequestTypeCategoryAdd     RequestType = "category_add_request"
	RequestTypeCategoryUpdate  RequestType = "category_update_request"
	RequestTypeCategoryDelete  RequestType = "category_delete_request"
)

// IsValid checks if the RequestType is a valid value.
func (t RequestType) IsValid() bool {
	switch t {
	case RequestTypeAccountRegister, RequestTypeCategoryAdd, RequestTypeCategoryUpdate, RequestTypeCategoryDelete:
		return true
	default:
		return false
	}
}

// RequiredDataKeys lists the RequestData keys a request of this type must carry.
func (t RequestType) RequiredDataKeys() []string {
	switch t {
	case RequestTypeAccountRegister:
		return []string{"name", "email", "phone", "storeName", "storeAddress"}
	case RequestTypeCategoryAdd, RequestTypeCategoryUpdate, RequestTypeCategoryDelete:
		return []string{"name", "description"}
	default:
		return nil
	}
}

// RequestStatus is the review state of a Request.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// RequestPriority orders requests in the review queue.
type RequestPriority string

const (
	RequestPriorityLow    RequestPriority = "low"
	RequestPriorityNormal RequestPriority = "normal"
	RequestPriorityHigh   RequestPriority = "high"
	RequestPriorityUrgent RequestPriority = "urgent"
)

// RequestData is the free-form payload of a Request.
type RequestData map[string]any

// String returns the value under key when it is a string.
func (d RequestData) String(key string) string {
	if v, ok := d[key].(string); ok {
		return v
	}

	return ""
}

// Request is an item in the administrator review queue.
// Status moves one way from pending to approved or rejected.
type Request struct {
	ID              uuid.UUID       `json:"id"`
	Type            RequestType     `json:"type"`
	Status          RequestStatus   `json:"status"`
	RequestedBy     uuid.UUID       `json:"requested_by"`
	ReviewedBy      *uuid.UUID      `json:"reviewed_by"`
	ReviewedAt      *time.Time      `json:"reviewed_at"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	ReviewNote      string          `json:"review_note,omitempty"`
	RequestData     RequestData     `json:"request_data"`
	Priority        RequestPriority `json:"priority"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// NewRequestParams is the plain-data bag used to construct a Request.
type NewRequestParams struct {
	ID          uuid.UUID
	Type        RequestType
	RequestedBy uuid.UUID
	RequestData RequestData
	Priority    RequestPriority
	Notes       string
}

// NewRequest builds a pending request. The payload is copied so the request owns its snapshot.
func NewRequest(params NewRequestParams, now time.Time) *Request {
	id := params.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	priority := params.Priority
	if priority == "" {
		priority = RequestPriorityNormal
	}

	data := make(RequestData, len(params.RequestData))
	for k, v := range params.RequestData {
		data[k] = v
	}

	return &Request{
		ID:          id,
		Type:        params.Type,
		Status:      RequestStatusPending,
		RequestedBy: params.RequestedBy,
		RequestData: data,
		Priority:    priority,
		Notes:       params.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (r *Request) IsPending() bool { return r.Status == RequestStatusPending }

// CanBeReviewed reports whether the request is still waiting for a decision.
func (r *Request) CanBeReviewed() bool {
	return r.IsPending()
}

// IsStoreManagerApprovalRequest reports whether this request registers a store manager.
func (r *Request) IsStoreManagerApprovalRequest() bool {
	return r.Type == RequestTypeAccountRegister
}

// IsCategoryRequest reports whether this request changes the category tree.
func (r *Request) IsCategoryRequest() bool {
	switch r.Type {
	case RequestTypeCategoryAdd, RequestTypeCategoryUpdate, RequestTypeCategoryDelete:
		return true
	default:
		return false
	}
}

// HasValidRequestData reports whether every key required by the request type is present and non-empty.
func (r *Request) HasValidRequestData() bool {
	keys := r.Type.RequiredDataKeys()
	if keys == nil {
		return false
	}

	for _, key := range keys {
		if r.RequestData.String(key) == "" {
			return false
		}
	}

	return true
}

// Approve moves a pending request to approved. It returns false and leaves
// the request untouched when it is not pending.
func (r *Request) Approve(reviewerID uuid.UUID, note string, now time.Time) bool {
	if !r.CanBeReviewed() {
		return false
	}

	r.Status = RequestStatusApproved
	r.ReviewedBy = &reviewerID
	r.ReviewedAt = &now
	r.ReviewNote = note
	r.UpdatedAt = now

	return true
}

// Reject moves a pending request to rejected. It returns false and leaves
// the request untouched when it is not pending.
func (r *Request) Reject(reviewerID uuid.UUID, reason string, now time.Time) bool {
	if !r.CanBeReviewed() {
		return false
	}

	r.Status = RequestStatusRejected
	r.ReviewedBy = &reviewerID
	r.ReviewedAt = &now
	r.RejectionReason = reason
	r.UpdatedAt = now

	return true
}

// RollbackReview returns a reviewed request to pending and clears the review stamps.
// It is the compensating step for a multi-entity approval whose later step failed.
func (r *Request) RollbackReview(now time.Time) {
	r.Status = RequestStatusPending
	r.ReviewedBy = nil
	r.ReviewedAt = nil
	r.RejectionReason = ""
	r.ReviewNote = ""
	r.UpdatedAt = now
}
