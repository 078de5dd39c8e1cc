// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"strings"
	"time"

	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
//
//	pending -> confirmed -> processing -> shipped -> delivered
//	pending, confirmed -> cancelled
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsTerminal reports whether no transition leaves this status.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// PaymentStatus is the payment sub-state of an order.
//
//	pending -> paid -> refunded
//	pending -> failed
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// OrderItem is a product line captured at order time.
type OrderItem struct {
	ProductID    uuid.UUID       `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
	Quantity     int             `json:"quantity"`
	Unit         string          `json:"unit,omitempty"`
}

// LineTotal returns price times quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.ProductPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is a customer purchase moving through the fulfilment state machine.
type Order struct {
	ID                 uuid.UUID       `json:"id"`
	OrderNumber        string          `json:"order_number"`
	UserID             uuid.UUID       `json:"user_id"`
	Items              []OrderItem     `json:"items"`
	Status             OrderStatus     `json:"status"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	ShippingAmount     decimal.Decimal `json:"shipping_amount"`
	TaxAmount          decimal.Decimal `json:"tax_amount"`
	FinalAmount        decimal.Decimal `json:"final_amount"`
	PaymentStatus      PaymentStatus   `json:"payment_status"`
	PaymentID          string          `json:"payment_id,omitempty"`
	TrackingNumber     string          `json:"tracking_number,omitempty"`
	CancelledAt        *time.Time      `json:"cancelled_at"`
	CancellationReason string          `json:"cancellation_reason,omitempty"`
	ProcessedBy        *uuid.UUID      `json:"processed_by"`
	ProcessedAt        *time.Time      `json:"processed_at"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// NewOrderParams is the plain-data bag used to construct an Order.
type NewOrderParams struct {
	ID             uuid.UUID
	NumberPrefix   string
	UserID         uuid.UUID
	Items          []OrderItem
	DiscountAmount decimal.Decimal
	ShippingAmount decimal.Decimal
	TaxAmount      decimal.Decimal
}

// NewOrder builds a pending order with a generated order number and computed totals.
func NewOrder(params NewOrderParams, now time.Time) *Order {
	id := params.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	order := &Order{
		ID:             id,
		OrderNumber:    GenerateOrderNumber(params.NumberPrefix, id, now),
		UserID:         params.UserID,
		Items:          append([]OrderItem(nil), params.Items...),
		Status:         OrderStatusPending,
		DiscountAmount: params.DiscountAmount,
		ShippingAmount: params.ShippingAmount,
		TaxAmount:      params.TaxAmount,
		PaymentStatus:  PaymentStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	order.CalculateTotals()

	return order
}

// GenerateOrderNumber derives an order number from the order id, so two
// distinct orders never share a number.
func GenerateOrderNumber(prefix string, id uuid.UUID, now time.Time) string {
	if prefix == "" {
		prefix = "ORD"
	}
	compact := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))

	return fmt.Sprintf("%s-%s-%s", prefix, now.UTC().Format("20060102"), compact[:12])
}

// CalculateTotals recomputes TotalAmount from the items and FinalAmount from
// the amounts. FinalAmount never drops below zero.
func (o *Order) CalculateTotals() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal())
	}
	o.TotalAmount = total

	final := total.Add(o.ShippingAmount).Add(o.TaxAmount).Sub(o.DiscountAmount)
	if final.IsNegative() {
		final = decimal.Zero
	}
	o.FinalAmount = final
}

// CanBeConfirmed reports whether the order is still pending.
func (o *Order) CanBeConfirmed() bool { return o.Status == OrderStatusPending }

// CanStartProcessing reports whether the order has been confirmed.
func (o *Order) CanStartProcessing() bool { return o.Status == OrderStatusConfirmed }

// CanBeShipped reports whether the order is being processed.
func (o *Order) CanBeShipped() bool { return o.Status == OrderStatusProcessing }

// CanBeDelivered reports whether the order is out for delivery.
func (o *Order) CanBeDelivered() bool { return o.Status == OrderStatusShipped }

// CanBeCancelled reports whether the order has not yet entered processing.
func (o *Order) CanBeCancelled() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusConfirmed
}

// IsOwnedBy reports whether userID placed this order.
func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.UserID == userID
}

// Confirm moves pending to confirmed.
func (o *Order) Confirm(now time.Time) error {
	if !o.CanBeConfirmed() {
		return o.invalidTransition(OrderStatusConfirmed, "")
	}

	o.transition(OrderStatusConfirmed, now)

	return nil
}

// StartProcessing moves confirmed to processing.
func (o *Order) StartProcessing(now time.Time) error {
	if !o.CanStartProcessing() {
		return o.invalidTransition(OrderStatusProcessing, "")
	}

	o.transition(OrderStatusProcessing, now)

	return nil
}

// Ship moves processing to shipped and records the tracking number.
func (o *Order) Ship(trackingNumber string, now time.Time) error {
	if !o.CanBeShipped() {
		return o.invalidTransition(OrderStatusShipped, "")
	}
	o.TrackingNumber = trackingNumber

	o.transition(OrderStatusShipped, now)

	return nil
}

// Deliver moves shipped to delivered.
func (o *Order) Deliver(now time.Time) error {
	if !o.CanBeDelivered() {
		return o.invalidTransition(OrderStatusDelivered, "")
	}

	o.transition(OrderStatusDelivered, now)

	return nil
}

// Cancel moves pending or confirmed to cancelled.
func (o *Order) Cancel(reason string, now time.Time) error {
	if !o.CanBeCancelled() {
		return o.invalidTransition(OrderStatusCancelled, domainerrors.ErrOrderNotCancellable.Message())
	}
	o.CancelledAt = &now
	o.CancellationReason = reason

	o.transition(OrderStatusCancelled, now)

	return nil
}

// MarkProcessed stamps who moved the order forward and when.
func (o *Order) MarkProcessed(processorID uuid.UUID, now time.Time) {
	o.ProcessedBy = &processorID
	o.ProcessedAt = &now
	o.UpdatedAt = now
}

// MarkAsPaid moves the payment from pending to paid.
func (o *Order) MarkAsPaid(paymentID string, now time.Time) error {
	if o.PaymentStatus != PaymentStatusPending {
		return domainerrors.NewInvalidTransitionError(string(o.PaymentStatus), string(PaymentStatusPaid), "Only pending payments can be marked as paid")
	}
	o.PaymentID = paymentID
	o.PaymentStatus = PaymentStatusPaid
	o.UpdatedAt = now

	return nil
}

// MarkPaymentFailed moves the payment from pending to failed.
func (o *Order) MarkPaymentFailed(now time.Time) error {
	if o.PaymentStatus != PaymentStatusPending {
		return domainerrors.NewInvalidTransitionError(string(o.PaymentStatus), string(PaymentStatusFailed), "Only pending payments can fail")
	}
	o.PaymentStatus = PaymentStatusFailed
	o.UpdatedAt = now

	return nil
}

// Refund moves the payment from paid to refunded.
func (o *Order) Refund(now time.Time) error {
	if o.PaymentStatus != PaymentStatusPaid {
		return domainerrors.NewInvalidTransitionError(string(o.PaymentStatus), string(PaymentStatusRefunded), "Only paid orders can be refunded")
	}
	o.PaymentStatus = PaymentStatusRefunded
	o.UpdatedAt = now

	return nil
}

// AddItem appends a line, or increases the quantity of an existing line for the same product.
// Items can only change while the order is pending. Totals are not recomputed.
func (o *Order) AddItem(item OrderItem, now time.Time) error {
	if o.Status != OrderStatusPending {
		return domainerrors.ErrOrderNotEditable
	}
	if item.Quantity <= 0 {
		return domainerrors.ErrInvalidQuantity
	}
	if !item.ProductPrice.IsPositive() {
		return domainerrors.ErrInvalidPrice
	}

	for i := range o.Items {
		if o.Items[i].ProductID == item.ProductID {
			o.Items[i].Quantity += item.Quantity
			o.UpdatedAt = now

			return nil
		}
	}
	o.Items = append(o.Items, item)
	o.UpdatedAt = now

	return nil
}

// RemoveItem drops the line for productID. Items can only change while the order is pending.
func (o *Order) RemoveItem(productID uuid.UUID, now time.Time) error {
	if o.Status != OrderStatusPending {
		return domainerrors.ErrOrderNotEditable
	}

	for i := range o.Items {
		if o.Items[i].ProductID == productID {
			o.Items = append(o.Items[:i], o.Items[i+1:]...)
			o.UpdatedAt = now

			return nil
		}
	}

	return domainerrors.ErrProductNotFound
}

func (o *Order) transition(to OrderStatus, now time.Time) {
	o.Status = to
	o.UpdatedAt = now
}

func (o *Order) invalidTransition(to OrderStatus, reason string) error {
	return domainerrors.NewInvalidTransitionError(string(o.Status), string(to), reason)
}
