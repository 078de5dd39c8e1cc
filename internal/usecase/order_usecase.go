package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CancelOrderInput identifies the order to cancel and who is asking.
type CancelOrderInput struct {
	OrderID  uuid.UUID
	UserID   uuid.UUID
	UserRole entity.Role
	Reason   string `json:"reason"`
}

// OrderAction is a fulfilment step requested by staff.
type OrderAction string

const (
	// OrderActionConfirm accepts a pending order and starts processing it.
	OrderActionConfirm OrderAction = "confirm"
	// OrderActionShip hands a processing order to the carrier.
	OrderActionShip OrderAction = "ship"
	// OrderActionDeliver marks a shipped order as delivered.
	OrderActionDeliver OrderAction = "deliver"
)

// ProcessOrderInput identifies the order, the step and the staff member.
type ProcessOrderInput struct {
	OrderID        uuid.UUID
	Action         OrderAction `json:"action" validate:"required,oneof=confirm ship deliver"`
	Role           entity.Role
	ProcessorID    uuid.UUID
	TrackingNumber string `json:"tracking_number"`
}

// OrderOutput returns the order after the operation.
type OrderOutput struct {
	Outcome
	Order *entity.Order `json:"order"`
}

// OrderUsecase moves orders through cancellation and fulfilment.
type OrderUsecase interface {
	CancelOrder(ctx context.Context, input *CancelOrderInput) *OrderOutput
	ProcessOrder(ctx context.Context, input *ProcessOrderInput) *OrderOutput
}
