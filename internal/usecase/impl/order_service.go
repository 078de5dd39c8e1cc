package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var (
	cancelRoles  = entity.Roles{entity.RoleCustomer, entity.RoleAdmin, entity.RoleStoreManager}
	processRoles = entity.Roles{entity.RoleAdmin, entity.RoleStoreManager}
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	clock       service.Clock
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	Clock       service.Clock
	Logger      *slog.Logger
}

// NewOrderService creates the order cancellation and fulfilment use case.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		clock:       params.Clock,
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *orderService) loadOrder(ctx context.Context, orderID uuid.UUID, generic *domainerrors.BaseError) (*entity.Order, *usecase.Outcome) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		var outcome usecase.Outcome
		if errors.Is(err, repository.ErrOrderNotFound) {
			outcome = usecase.Rejected(domainerrors.ErrOrderNotFound, "")
		} else {
			outcome = usecase.FromError(errors.Wrap(err, "failed to load order"), generic)
		}

		return nil, &outcome
	}

	return order, nil
}

// CancelOrder cancels a pending or confirmed order. Customers may cancel only
// their own orders. Stock is returned per item on a best-effort basis.
func (srv *orderService) CancelOrder(ctx context.Context, input *usecase.CancelOrderInput) *usecase.OrderOutput {
	generic := domainerrors.ErrInternalError.WithMessage("Failed to cancel order")

	if !cancelRoles.Contains(input.UserRole) {
		return &usecase.OrderOutput{Outcome: usecase.Rejected(domainerrors.ErrForbidden, "You are not allowed to cancel orders")}
	}

	order, missing := srv.loadOrder(ctx, input.OrderID, generic)
	if missing != nil {
		return &usecase.OrderOutput{Outcome: *missing}
	}

	if input.UserRole == entity.RoleCustomer && !order.IsOwnedBy(input.UserID) {
		srv.log(ctx).Warn("Customer tried to cancel another user's order",
			slog.Any("orderID", order.ID),
			slog.Any("userID", input.UserID),
		)

		return &usecase.OrderOutput{Outcome: usecase.Rejected(domainerrors.ErrForbidden, "You can only cancel your own orders")}
	}

	if !order.CanBeCancelled() {
		return &usecase.OrderOutput{
			Outcome: usecase.Rejected(domainerrors.ErrOrderNotCancellable, ""),
			Order:   order,
		}
	}

	if err := order.Cancel(input.Reason, srv.clock.Now()); err != nil {
		return &usecase.OrderOutput{Outcome: usecase.FromError(err, generic), Order: order}
	}

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		srv.log(ctx).Error("Failed to persist cancelled order", slog.Any("orderID", order.ID), slog.Any("error", err))

		return &usecase.OrderOutput{Outcome: usecase.FromError(errors.Wrap(err, "failed to update order"), generic)}
	}

	// Stock goes back only once the cancellation is stored.
	srv.restoreStock(ctx, order)

	srv.log(ctx).Info("Order cancelled", slog.Any("orderID", order.ID), slog.Any("userID", input.UserID))

	return &usecase.OrderOutput{
		Outcome: usecase.Succeeded("Order cancelled successfully"),
		Order:   order,
	}
}

// restoreStock returns every item's quantity to its product. Failures are
// logged and do not stop the cancellation.
func (srv *orderService) restoreStock(ctx context.Context, order *entity.Order) {
	for _, item := range order.Items {
		if err := srv.productRepo.AddStock(ctx, item.ProductID, item.Quantity); err != nil {
			srv.log(ctx).Warn("Failed to restore stock for cancelled order item",
				slog.Any("orderID", order.ID),
				slog.Any("productID", item.ProductID),
				slog.Int("quantity", item.Quantity),
				slog.Any("error", err),
			)
		}
	}
}

// ProcessOrder moves an order one fulfilment step forward on behalf of staff.
func (srv *orderService) ProcessOrder(ctx context.Context, input *usecase.ProcessOrderInput) *usecase.OrderOutput {
	generic := domainerrors.ErrInternalError.WithMessage("Failed to process order")

	if !processRoles.Contains(input.Role) {
		return &usecase.OrderOutput{Outcome: usecase.Rejected(domainerrors.ErrForbidden, "Only administrators and store managers can process orders")}
	}

	order, missing := srv.loadOrder(ctx, input.OrderID, generic)
	if missing != nil {
		return &usecase.OrderOutput{Outcome: *missing}
	}

	now := srv.clock.Now()

	var err error
	switch input.Action {
	case usecase.OrderActionConfirm:
		if order.Status != entity.OrderStatusPending {
			return &usecase.OrderOutput{
				Outcome: usecase.Rejected(domainerrors.ErrInvalidOrderAction, fmt.Sprintf("Cannot confirm order with status %s", order.Status)),
				Order:   order,
			}
		}
		if err = order.Confirm(now); err == nil {
			err = order.StartProcessing(now)
		}
	case usecase.OrderActionShip:
		err = order.Ship(input.TrackingNumber, now)
	case usecase.OrderActionDeliver:
		err = order.Deliver(now)
	default:
		return &usecase.OrderOutput{Outcome: usecase.Rejected(domainerrors.ErrInvalidOrderAction, "")}
	}
	if err != nil {
		srv.log(ctx).Warn("Order transition refused",
			slog.Any("orderID", order.ID),
			slog.String("action", string(input.Action)),
			slog.Any("error", err),
		)

		return &usecase.OrderOutput{Outcome: usecase.FromError(err, generic), Order: order}
	}

	order.MarkProcessed(input.ProcessorID, now)

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		srv.log(ctx).Error("Failed to persist processed order", slog.Any("orderID", order.ID), slog.Any("error", err))

		return &usecase.OrderOutput{Outcome: usecase.FromError(errors.Wrap(err, "failed to update order"), generic)}
	}

	srv.log(ctx).Info("Order processed",
		slog.Any("orderID", order.ID),
		slog.String("action", string(input.Action)),
		slog.String("status", string(order.Status)),
	)

	return &usecase.OrderOutput{
		Outcome: usecase.Succeeded("Order processed successfully"),
		Order:   order,
	}
}
