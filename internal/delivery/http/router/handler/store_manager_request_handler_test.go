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

func newStoreManagerRequestServer(t *testing.T, uc *mocks.MockStoreManagerRequestUsecase, adminID uuid.UUID) *testServer {
	t.Helper()

	s := newTestServer()
	h := NewStoreManagerRequestHandler(uc, s.recorder)
	g := s.echo.Group("/admin", asCaller(adminID, entity.RoleAdmin))
	g.GET("/store-manager-requests", h.ListPending)
	g.POST("/store-manager-requests/:id/approve", h.Approve)
	g.POST("/store-manager-requests/:id/reject", h.Reject)
	g.GET("/system-status", h.SystemStatus)

	return s
}

func TestStoreManagerRequestHandler_ListPending(t *testing.T) {
	adminID := uuid.New()
	uc := mocks.NewMockStoreManagerRequestUsecase(t)
	uc.EXPECT().GetPendingRequests(mock.Anything, adminID).Return(&usecase.PendingRequestsOutput{
		Outcome:  usecase.Succeeded("Pending requests retrieved successfully"),
		Requests: []*entity.Request{{ID: uuid.New(), Status: entity.RequestStatusPending}},
	})

	s := newStoreManagerRequestServer(t, uc, adminID)
	rec, resp := s.do(t, http.MethodGet, "/admin/store-manager-requests", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	items, ok := resp.Data.([]any)
	if assert.True(t, ok) {
		assert.Len(t, items, 1)
	}
}

func TestStoreManagerRequestHandler_Approve(t *testing.T) {
	adminID, requestID := uuid.New(), uuid.New()

	tests := []struct {
		name       string
		target     string
		body       string
		setupMock  func(uc *mocks.MockStoreManagerRequestUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "approves with note",
			target: "/admin/store-manager-requests/" + requestID.String() + "/approve",
			body:   `{"note":"welcome"}`,
			setupMock: func(uc *mocks.MockStoreManagerRequestUsecase) {
				uc.EXPECT().ApproveRequest(mock.Anything, requestID, adminID, "welcome").
					Return(&usecase.RequestReviewOutput{Outcome: usecase.Succeeded("Store manager approved")})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "approves without body",
			target: "/admin/store-manager-requests/" + requestID.String() + "/approve",
			setupMock: func(uc *mocks.MockStoreManagerRequestUsecase) {
				uc.EXPECT().ApproveRequest(mock.Anything, requestID, adminID, "").
					Return(&usecase.RequestReviewOutput{Outcome: usecase.Succeeded("Store manager approved")})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "rejects malformed id",
			target:     "/admin/store-manager-requests/not-a-uuid/approve",
			setupMock:  func(uc *mocks.MockStoreManagerRequestUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:   "already reviewed",
			target: "/admin/store-manager-requests/" + requestID.String() + "/approve",
			setupMock: func(uc *mocks.MockStoreManagerRequestUsecase) {
				uc.EXPECT().ApproveRequest(mock.Anything, requestID, adminID, "").
					Return(&usecase.RequestReviewOutput{Outcome: usecase.Rejected(domainerrors.ErrRequestNotReviewable, "")})
			},
			wantStatus: domainerrors.ErrRequestNotReviewable.HTTPCode(),
			wantCode:   domainerrors.ErrRequestNotReviewable.ErrorCode(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mocks.NewMockStoreManagerRequestUsecase(t)
			tt.setupMock(uc)

			s := newStoreManagerRequestServer(t, uc, adminID)
			rec, resp := s.do(t, http.MethodPost, tt.target, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" && assert.NotNil(t, resp.Error) {
				assert.Equal(t, tt.wantCode, resp.Error.Code)
			}
		})
	}
}

func TestStoreManagerRequestHandler_Reject(t *testing.T) {
	adminID, requestID := uuid.New(), uuid.New()
	target := "/admin/store-manager-requests/" + requestID.String() + "/reject"

	t.Run("requires a reason", func(t *testing.T) {
		s := newStoreManagerRequestServer(t, mocks.NewMockStoreManagerRequestUsecase(t), adminID)
		rec, _ := s.do(t, http.MethodPost, target, `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("passes the reason through", func(t *testing.T) {
		uc := mocks.NewMockStoreManagerRequestUsecase(t)
		uc.EXPECT().RejectRequest(mock.Anything, requestID, adminID, "incomplete documents").
			Return(&usecase.RequestReviewOutput{Outcome: usecase.Succeeded("Request rejected successfully")})

		s := newStoreManagerRequestServer(t, uc, adminID)
		rec, resp := s.do(t, http.MethodPost, target, `{"reason":"incomplete documents"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Request rejected successfully", resp.Message)
		if assert.Len(t, s.recorder.calls, 1) {
			assert.Equal(t, opRejectRequest, s.recorder.calls[0].operation)
		}
	})
}

func TestStoreManagerRequestHandler_RequiresCaller(t *testing.T) {
	s := newTestServer()
	h := NewStoreManagerRequestHandler(mocks.NewMockStoreManagerRequestUsecase(t), s.recorder)
	s.echo.GET("/admin/system-status", h.SystemStatus)

	rec, resp := s.do(t, http.MethodGet, "/admin/system-status", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	if assert.NotNil(t, resp.Error) {
		assert.Equal(t, "UNAUTHORIZED", resp.Error.Code)
	}
}
