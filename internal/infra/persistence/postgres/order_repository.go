package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// FindByID retrieves an order with its items in their original order.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// Update writes the order row. Items are a snapshot taken at checkout and are not rewritten.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{ID: order.ID}).
		Select("*").
		Omit("id", "order_number", "user_id", "created_at", clause.Associations).
		Updates(orderM)
	if result.Error != nil {
		return translateWriteError(result.Error, nil, domainerrors.ErrValidationFailed, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.OrderItem{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductPrice: item.ProductPrice,
			Quantity:     item.Quantity,
			Unit:         item.Unit,
		})
	}

	return &entity.Order{
		ID:                 data.ID,
		OrderNumber:        data.OrderNumber,
		UserID:             data.UserID,
		Items:              items,
		Status:             entity.OrderStatus(data.Status),
		TotalAmount:        data.TotalAmount,
		DiscountAmount:     data.DiscountAmount,
		ShippingAmount:     data.ShippingAmount,
		TaxAmount:          data.TaxAmount,
		FinalAmount:        data.FinalAmount,
		PaymentStatus:      entity.PaymentStatus(data.PaymentStatus),
		PaymentID:          data.PaymentID,
		TrackingNumber:     data.TrackingNumber,
		CancelledAt:        data.CancelledAt,
		CancellationReason: data.CancellationReason,
		ProcessedBy:        data.ProcessedBy,
		ProcessedAt:        data.ProcessedAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for i, item := range data.Items {
		items = append(items, model.OrderItemModel{
			OrderID:      data.ID,
			Position:     i,
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductPrice: item.ProductPrice,
			Quantity:     item.Quantity,
			Unit:         item.Unit,
		})
	}

	return &model.OrderModel{
		ID:                 data.ID,
		OrderNumber:        data.OrderNumber,
		UserID:             data.UserID,
		Status:             string(data.Status),
		TotalAmount:        data.TotalAmount,
		DiscountAmount:     data.DiscountAmount,
		ShippingAmount:     data.ShippingAmount,
		TaxAmount:          data.TaxAmount,
		FinalAmount:        data.FinalAmount,
		PaymentStatus:      string(data.PaymentStatus),
		PaymentID:          data.PaymentID,
		TrackingNumber:     data.TrackingNumber,
		CancelledAt:        data.CancelledAt,
		CancellationReason: data.CancellationReason,
		ProcessedBy:        data.ProcessedBy,
		ProcessedAt:        data.ProcessedAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
		Items:              items,
	}
}
