package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mocks "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderServer(t *testing.T, uc *mocks.MockOrderUsecase, userID uuid.UUID, role entity.Role) *testServer {
	t.Helper()

	s := newTestServer()
	h := NewOrderHandler(uc, s.recorder)
	g := s.echo.Group("/orders", asCaller(userID, role))
	g.POST("/:id/cancel", h.Cancel)
	g.POST("/:id/process", h.Process)

	return s
}

func TestOrderHandler_Cancel(t *testing.T) {
	userID, orderID := uuid.New(), uuid.New()

	t.Run("cancels own order", func(t *testing.T) {
		uc := mocks.NewMockOrderUsecase(t)
		uc.EXPECT().CancelOrder(mock.Anything, &usecase.CancelOrderInput{
			OrderID:  orderID,
			UserID:   userID,
			UserRole: entity.RoleCustomer,
			Reason:   "changed my mind",
		}).Return(&usecase.OrderOutput{
			Outcome: usecase.Succeeded("Order cancelled successfully"),
			Order:   &entity.Order{ID: orderID, Status: entity.OrderStatusCancelled},
		})

		s := newOrderServer(t, uc, userID, entity.RoleCustomer)
		rec, resp := s.do(t, http.MethodPost, "/orders/"+orderID.String()+"/cancel", `{"reason":"changed my mind"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, resp.Success)
		assert.Contains(t, rec.Body.String(), `"status":"cancelled"`)
	})

	t.Run("not cancellable", func(t *testing.T) {
		uc := mocks.NewMockOrderUsecase(t)
		uc.EXPECT().CancelOrder(mock.Anything, mock.Anything).Return(&usecase.OrderOutput{
			Outcome: usecase.Rejected(domainerrors.ErrOrderNotCancellable, ""),
			Order:   &entity.Order{ID: orderID, Status: entity.OrderStatusShipped},
		})

		s := newOrderServer(t, uc, userID, entity.RoleCustomer)
		rec, resp := s.do(t, http.MethodPost, "/orders/"+orderID.String()+"/cancel", `{}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Nil(t, resp.Data)
		if assert.NotNil(t, resp.Error) {
			assert.Equal(t, "ORDER_NOT_CANCELLABLE", resp.Error.Code)
		}
	})
}

func TestOrderHandler_Process(t *testing.T) {
	managerID, orderID := uuid.New(), uuid.New()
	target := "/orders/" + orderID.String() + "/process"

	t.Run("ships with tracking number", func(t *testing.T) {
		uc := mocks.NewMockOrderUsecase(t)
		uc.EXPECT().ProcessOrder(mock.Anything, &usecase.ProcessOrderInput{
			OrderID:        orderID,
			Action:         usecase.OrderActionShip,
			Role:           entity.RoleStoreManager,
			ProcessorID:    managerID,
			TrackingNumber: "TRK-1",
		}).Return(&usecase.OrderOutput{Outcome: usecase.Succeeded("Order processed successfully")})

		s := newOrderServer(t, uc, managerID, entity.RoleStoreManager)
		rec, _ := s.do(t, http.MethodPost, target, `{"action":"ship","tracking_number":"TRK-1"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		if assert.Len(t, s.recorder.calls, 1) {
			assert.Equal(t, opProcessOrder, s.recorder.calls[0].operation)
			assert.True(t, s.recorder.calls[0].outcome.Success)
		}
	})

	t.Run("rejects unknown action", func(t *testing.T) {
		s := newOrderServer(t, mocks.NewMockOrderUsecase(t), managerID, entity.RoleStoreManager)
		rec, _ := s.do(t, http.MethodPost, target, `{"action":"refund"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, s.recorder.calls)
	})
}
