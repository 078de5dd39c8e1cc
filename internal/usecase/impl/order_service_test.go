package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/clock"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewOrderService(OrderServiceParams{
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
		Clock:       clock.NewFixed(testNow),
		Logger:      newDiscardLogger(),
	})

	return orderServiceFixtures{service: service, orderRepo: orderRepo, productRepo: productRepo}
}

func newTestOrder(ownerID uuid.UUID, status entity.OrderStatus) *entity.Order {
	order := entity.NewOrder(entity.NewOrderParams{
		UserID: ownerID,
		Items: []entity.OrderItem{
			{ProductID: uuid.New(), ProductName: "Kettle", ProductPrice: decimal.RequireFromString("39.90"), Quantity: 1},
			{ProductID: uuid.New(), ProductName: "Mug", ProductPrice: decimal.RequireFromString("7.50"), Quantity: 4},
		},
	}, testNow)
	order.Status = status

	return order
}

func TestOrderService_CancelOrder_OtherCustomersOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := newTestOrder(uuid.New(), entity.OrderStatusPending)

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	output := fx.service.CancelOrder(ctx, &usecase.CancelOrderInput{
		OrderID:  order.ID,
		UserID:   uuid.New(),
		UserRole: entity.RoleCustomer,
	})

	assert.False(t, output.Success)
	assert.Equal(t, "You can only cancel your own orders", output.Message)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
}

func TestOrderService_CancelOrder_ShippedAsAdmin(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := newTestOrder(uuid.New(), entity.OrderStatusShipped)

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	output := fx.service.CancelOrder(ctx, &usecase.CancelOrderInput{
		OrderID:  order.ID,
		UserID:   uuid.New(),
		UserRole: entity.RoleAdmin,
	})

	assert.False(t, output.Success)
	assert.Equal(t, "Order cannot be cancelled in its current status", output.Message)
}

func TestOrderService_CancelOrder_StockRestoreIsBestEffort(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	order := newTestOrder(ownerID, entity.OrderStatusConfirmed)

	var calls []string
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.productRepo.EXPECT().AddStock(ctx, order.Items[0].ProductID, 1).
		Run(func(_ context.Context, _ uuid.UUID, _ int) { calls = append(calls, "stock") }).
		Return(repository.ErrProductNotFound)
	fx.productRepo.EXPECT().AddStock(ctx, order.Items[1].ProductID, 4).
		Run(func(_ context.Context, _ uuid.UUID, _ int) { calls = append(calls, "stock") }).
		Return(nil)
	fx.orderRepo.EXPECT().Update(ctx, order).
		Run(func(_ context.Context, o *entity.Order) { calls = append(calls, "update:"+string(o.Status)) }).
		Return(nil)

	output := fx.service.CancelOrder(ctx, &usecase.CancelOrderInput{
		OrderID:  order.ID,
		UserID:   ownerID,
		UserRole: entity.RoleCustomer,
		Reason:   "changed my mind",
	})

	require.True(t, output.Success, output.Message)
	assert.Equal(t, []string{"update:cancelled", "stock", "stock"}, calls)
	assert.Equal(t, entity.OrderStatusCancelled, order.Status)
	assert.Equal(t, "changed my mind", order.CancellationReason)
	require.NotNil(t, order.CancelledAt)
	assert.Equal(t, testNow, *order.CancelledAt)
}

func TestOrderService_CancelOrder_UnknownRole(t *testing.T) {
	fx := createTestOrderService(t)

	output := fx.service.CancelOrder(context.Background(), &usecase.CancelOrderInput{
		OrderID:  uuid.New(),
		UserID:   uuid.New(),
		UserRole: entity.Role("courier"),
	})

	assert.False(t, output.Success)
	assert.ErrorIs(t, output.Failure, domainerrors.ErrForbidden)
}

func TestOrderService_CancelOrder_PersistFailure(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := newTestOrder(uuid.New(), entity.OrderStatusPending)
	require.Len(t, order.Items, 2)

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().Update(ctx, order).Return(errors.New("connection reset"))

	output := fx.service.CancelOrder(ctx, &usecase.CancelOrderInput{OrderID: order.ID, UserID: uuid.New(), UserRole: entity.RoleStoreManager})

	assert.False(t, output.Success)
	assert.Equal(t, "Failed to cancel order", output.Message)
	assert.Contains(t, output.Error, "connection reset")
	fx.productRepo.AssertNotCalled(t, "AddStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_ProcessOrder_Confirm(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := newTestOrder(uuid.New(), entity.OrderStatusPending)
	processorID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().Update(ctx, order).Return(nil)

	output := fx.service.ProcessOrder(ctx, &usecase.ProcessOrderInput{
		OrderID:     order.ID,
		Action:      usecase.OrderActionConfirm,
		Role:        entity.RoleStoreManager,
		ProcessorID: processorID,
	})

	require.True(t, output.Success, output.Message)
	assert.Equal(t, entity.OrderStatusProcessing, order.Status)
	require.NotNil(t, order.ProcessedBy)
	assert.Equal(t, processorID, *order.ProcessedBy)
	require.NotNil(t, order.ProcessedAt)
	assert.Equal(t, testNow, *order.ProcessedAt)
}

func TestOrderService_ProcessOrder_ConfirmRequiresPending(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := newTestOrder(uuid.New(), entity.OrderStatusShipped)

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	output := fx.service.ProcessOrder(ctx, &usecase.ProcessOrderInput{
		OrderID: order.ID,
		Action:  usecase.OrderActionConfirm,
		Role:    entity.RoleAdmin,
	})

	assert.False(t, output.Success)
	assert.Equal(t, "Cannot confirm order with status shipped", output.Message)
	assert.Nil(t, order.ProcessedBy)
}

func TestOrderService_ProcessOrder_ShipAndDeliver(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := newTestOrder(uuid.New(), entity.OrderStatusProcessing)

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil).Twice()
	fx.orderRepo.EXPECT().Update(ctx, order).Return(nil).Twice()

	shipped := fx.service.ProcessOrder(ctx, &usecase.ProcessOrderInput{
		OrderID:        order.ID,
		Action:         usecase.OrderActionShip,
		Role:           entity.RoleAdmin,
		TrackingNumber: "1Z999AA10123456784",
	})
	require.True(t, shipped.Success, shipped.Message)
	assert.Equal(t, entity.OrderStatusShipped, order.Status)
	assert.Equal(t, "1Z999AA10123456784", order.TrackingNumber)

	delivered := fx.service.ProcessOrder(ctx, &usecase.ProcessOrderInput{
		OrderID: order.ID,
		Action:  usecase.OrderActionDeliver,
		Role:    entity.RoleAdmin,
	})
	require.True(t, delivered.Success, delivered.Message)
	assert.Equal(t, entity.OrderStatusDelivered, order.Status)
}

func TestOrderService_ProcessOrder_InvalidTransition(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := newTestOrder(uuid.New(), entity.OrderStatusPending)

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	output := fx.service.ProcessOrder(ctx, &usecase.ProcessOrderInput{
		OrderID: order.ID,
		Action:  usecase.OrderActionDeliver,
		Role:    entity.RoleAdmin,
	})

	assert.False(t, output.Success)
	assert.Equal(t, "Cannot transition from pending to delivered", output.Message)
	var transitionErr *domainerrors.InvalidTransitionError
	require.ErrorAs(t, output.Failure, &transitionErr)
	assert.Equal(t, "pending", transitionErr.From)
}

func TestOrderService_ProcessOrder_CustomerDenied(t *testing.T) {
	fx := createTestOrderService(t)

	output := fx.service.ProcessOrder(context.Background(), &usecase.ProcessOrderInput{
		OrderID: uuid.New(),
		Action:  usecase.OrderActionConfirm,
		Role:    entity.RoleCustomer,
	})

	assert.False(t, output.Success)
	assert.ErrorIs(t, output.Failure, domainerrors.ErrForbidden)
}

func TestOrderService_ProcessOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	output := fx.service.ProcessOrder(ctx, &usecase.ProcessOrderInput{
		OrderID: orderID,
		Action:  usecase.OrderActionConfirm,
		Role:    entity.RoleAdmin,
	})

	assert.False(t, output.Success)
	assert.Equal(t, "Order not found", output.Message)
}
