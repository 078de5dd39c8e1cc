package handler

import (
	"net/http"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/policy"
	mocks "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSystemHandler_Initialize(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(uc *mocks.MockSystemUsecase)
		wantStatus int
		wantCode   string
		wantCalls  int
	}{
		{
			name: "creates administrator",
			body: `{"email":"admin@example.com","name":"Admin","password":"s3cret-pass"}`,
			setupMock: func(uc *mocks.MockSystemUsecase) {
				uc.EXPECT().InitializeSystem(mock.Anything, mock.MatchedBy(func(in *usecase.InitializeSystemInput) bool {
					return in.Email == "admin@example.com" && in.Name == "Admin"
				})).Return(&usecase.InitializeSystemOutput{Outcome: usecase.Succeeded("System initialized")})
			},
			wantStatus: http.StatusCreated,
			wantCalls:  1,
		},
		{
			name:       "rejects short password before the use case",
			body:       `{"email":"admin@example.com","name":"Admin","password":"short"}`,
			setupMock:  func(uc *mocks.MockSystemUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "rejects malformed body",
			body:       `{"email":`,
			setupMock:  func(uc *mocks.MockSystemUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name: "maps use case failure",
			body: `{"email":"admin@example.com","name":"Admin","password":"s3cret-pass"}`,
			setupMock: func(uc *mocks.MockSystemUsecase) {
				uc.EXPECT().InitializeSystem(mock.Anything, mock.Anything).
					Return(&usecase.InitializeSystemOutput{Outcome: usecase.Rejected(domainerrors.ErrForbidden, "System is already initialized")})
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mocks.NewMockSystemUsecase(t)
			tt.setupMock(uc)

			s := newTestServer()
			h := NewSystemHandler(uc, s.recorder)
			s.echo.POST("/system/initialize", h.Initialize)

			rec, resp := s.do(t, http.MethodPost, "/system/initialize", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.False(t, resp.Success)
				if assert.NotNil(t, resp.Error) {
					assert.Equal(t, tt.wantCode, resp.Error.Code)
				}
			}
			assert.Len(t, s.recorder.calls, tt.wantCalls)
		})
	}
}

func TestSystemHandler_GetStatus(t *testing.T) {
	uc := mocks.NewMockSystemUsecase(t)
	uc.EXPECT().CheckInitializationStatus(mock.Anything).Return(&usecase.SystemStatusOutput{
		Outcome: usecase.Succeeded("ok"),
		Status:  policy.SystemStatus{IsInitialized: true, AdminCount: 1},
	})

	s := newTestServer()
	s.echo.GET("/system/status", NewSystemHandler(uc, s.recorder).GetStatus)

	rec, resp := s.do(t, http.MethodGet, "/system/status", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	data, ok := resp.Data.(map[string]any)
	if assert.True(t, ok) {
		assert.Equal(t, true, data["is_initialized"])
		assert.Equal(t, float64(1), data["admin_count"])
	}
	if assert.Len(t, s.recorder.calls, 1) {
		assert.Equal(t, opSystemStatus, s.recorder.calls[0].operation)
	}
}
