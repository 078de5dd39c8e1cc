package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. Amounts are NUMERIC columns scanned into decimal.Decimal.
type OrderModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderNumber        string          `gorm:"type:varchar(64);not null;unique"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status             string          `gorm:"type:varchar(16);not null;index"`
	TotalAmount        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	DiscountAmount     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	ShippingAmount     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TaxAmount          decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	FinalAmount        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	PaymentStatus      string          `gorm:"type:varchar(16);not null"`
	PaymentID          string          `gorm:"type:varchar(128)"`
	TrackingNumber     string          `gorm:"type:varchar(128)"`
	CancelledAt        *time.Time
	CancellationReason string     `gorm:"type:text"`
	ProcessedBy        *uuid.UUID `gorm:"type:uuid"`
	ProcessedAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Product name and price are snapshots taken at order time.
type OrderItemModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position     int             `gorm:"not null"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName  string          `gorm:"type:varchar(255);not null"`
	ProductPrice decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Quantity     int             `gorm:"not null"`
	Unit         string          `gorm:"type:varchar(32)"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
