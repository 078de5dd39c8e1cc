package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/policy"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/clock"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type requestServiceFixtures struct {
	service     usecase.StoreManagerRequestUsecase
	txManager   *mockRepo.MockTransactionManager
	userRepo    *mockRepo.MockUserRepository
	profileRepo *mockRepo.MockStoreManagerProfileRepository
	requestRepo *mockRepo.MockRequestRepository
}

func createTestRequestService(t *testing.T) requestServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	profileRepo := mockRepo.NewMockStoreManagerProfileRepository(t)
	requestRepo := mockRepo.NewMockRequestRepository(t)
	c := clock.NewFixed(testNow)
	adminPolicy, approvalPolicy := newTestPolicies(c)

	service := NewStoreManagerRequestService(StoreManagerRequestServiceParams{
		TxManager:      txManager,
		UserRepo:       userRepo,
		ProfileRepo:    profileRepo,
		RequestRepo:    requestRepo,
		Clock:          c,
		AdminPolicy:    adminPolicy,
		ApprovalPolicy: approvalPolicy,
		Logger:         newDiscardLogger(),
	})

	return requestServiceFixtures{
		service:     service,
		txManager:   txManager,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		requestRepo: requestRepo,
	}
}

func TestStoreManagerRequests_GetPendingRequests(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	admin := newTestAdmin()

	_, pending := newPendingRegistration(uuid.New())
	_, reviewed := newPendingRegistration(uuid.New())
	reviewed.Approve(admin.ID, "", testNow)
	category := entity.NewRequest(entity.NewRequestParams{
		Type:        entity.RequestTypeCategoryAdd,
		RequestedBy: uuid.New(),
		RequestData: entity.RequestData{"name": "Tea", "description": "Leaves"},
	}, testNow)

	fx.userRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)
	fx.requestRepo.EXPECT().FindAll(ctx).Return([]*entity.Request{pending, reviewed, category}, nil)

	output := fx.service.GetPendingRequests(ctx, admin.ID)

	require.True(t, output.Success, output.Message)
	assert.Equal(t, []*entity.Request{pending}, output.Requests)
}

func TestStoreManagerRequests_NonAdminDenied(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	customer := newTestUser(entity.RoleCustomer, "c@example.com")

	fx.userRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)

	output := fx.service.GetPendingRequests(ctx, customer.ID)

	assert.False(t, output.Success)
	assert.Equal(t, policy.ReasonAdminOnly, output.Message)
	assert.ErrorIs(t, output.Failure, domainerrors.ErrForbidden)
}

func TestStoreManagerRequests_UnknownAdmin(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	adminID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, adminID).Return(nil, repository.ErrUserNotFound)

	output := fx.service.ApproveRequest(ctx, uuid.New(), adminID, "")

	assert.False(t, output.Success)
	assert.ErrorIs(t, output.Failure, domainerrors.ErrUnauthorized)
}

func TestStoreManagerRequests_ApproveRequest_Success(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	admin := newTestAdmin()
	applicantID := uuid.New()
	profile, request := newPendingRegistration(applicantID)

	fx.userRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)
	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, applicantID).Return(profile, nil)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txRequestRepo := mockRepo.NewMockRequestRepository(t)
		txProfileRepo := mockRepo.NewMockStoreManagerProfileRepository(t)
		factory.EXPECT().RequestRepo().Return(txRequestRepo)
		factory.EXPECT().ProfileRepo().Return(txProfileRepo)
		txRequestRepo.EXPECT().Update(ctx, request).Return(nil)
		txProfileRepo.EXPECT().Update(ctx, profile).Return(nil)
	})

	output := fx.service.ApproveRequest(ctx, request.ID, admin.ID, "welcome aboard")

	require.True(t, output.Success, output.Message)
	assert.Equal(t, entity.RequestStatusApproved, request.Status)
	assert.Equal(t, "welcome aboard", request.ReviewNote)
	require.NotNil(t, request.ReviewedBy)
	assert.Equal(t, admin.ID, *request.ReviewedBy)
	assert.True(t, profile.IsApproved)
	require.NotNil(t, profile.ApprovedBy)
	assert.Equal(t, admin.ID, *profile.ApprovedBy)
}

func TestStoreManagerRequests_ApproveRequest_ProfileAlreadyApprovedRollsBack(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	admin := newTestAdmin()
	applicantID := uuid.New()
	profile, request := newPendingRegistration(applicantID)
	require.NoError(t, profile.Approve(admin.ID, testNow))

	fx.userRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)
	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, applicantID).Return(profile, nil)

	output := fx.service.ApproveRequest(ctx, request.ID, admin.ID, "")

	assert.False(t, output.Success)
	assert.Contains(t, output.Message, "already approved")
	assert.ErrorIs(t, output.Failure, domainerrors.ErrProfileAlreadyApproved)
	assert.Equal(t, entity.RequestStatusPending, request.Status)
	assert.Nil(t, request.ReviewedBy)
	assert.Nil(t, request.ReviewedAt)
}

func TestStoreManagerRequests_ApproveRequest_MissingProfile(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	admin := newTestAdmin()
	applicantID := uuid.New()
	_, request := newPendingRegistration(applicantID)

	fx.userRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)
	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, applicantID).Return(nil, repository.ErrProfileNotFound)

	output := fx.service.ApproveRequest(ctx, request.ID, admin.ID, "")

	assert.False(t, output.Success)
	assert.Equal(t, policy.ReasonProfileNotFound, output.Message)
	assert.Equal(t, entity.RequestStatusPending, request.Status)
}

func TestStoreManagerRequests_ApproveRequest_PersistFailure(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	admin := newTestAdmin()
	applicantID := uuid.New()
	profile, request := newPendingRegistration(applicantID)

	fx.userRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)
	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, applicantID).Return(profile, nil)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txRequestRepo := mockRepo.NewMockRequestRepository(t)
		factory.EXPECT().RequestRepo().Return(txRequestRepo)
		txRequestRepo.EXPECT().Update(ctx, request).Return(errors.New("deadlock detected"))
	})

	output := fx.service.ApproveRequest(ctx, request.ID, admin.ID, "")

	assert.False(t, output.Success)
	assert.Equal(t, "Failed to approve request", output.Message)
	assert.Contains(t, output.Error, "deadlock detected")
}

func TestStoreManagerRequests_RejectRequest(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	admin := newTestAdmin()
	applicantID := uuid.New()
	profile, request := newPendingRegistration(applicantID)

	fx.userRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)
	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, applicantID).Return(profile, nil)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txRequestRepo := mockRepo.NewMockRequestRepository(t)
		txProfileRepo := mockRepo.NewMockStoreManagerProfileRepository(t)
		factory.EXPECT().RequestRepo().Return(txRequestRepo)
		factory.EXPECT().ProfileRepo().Return(txProfileRepo)
		txRequestRepo.EXPECT().Update(ctx, request).Return(nil)
		txProfileRepo.EXPECT().Update(ctx, profile).Return(nil)
	})

	output := fx.service.RejectRequest(ctx, request.ID, admin.ID, "incomplete documents")

	require.True(t, output.Success, output.Message)
	assert.Equal(t, entity.RequestStatusRejected, request.Status)
	assert.Equal(t, "incomplete documents", request.RejectionReason)
	assert.Equal(t, "incomplete documents", profile.Notes)
	assert.False(t, profile.IsApproved)
}

func TestStoreManagerRequests_RejectRequest_AlreadyReviewed(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	admin := newTestAdmin()
	_, request := newPendingRegistration(uuid.New())
	request.Reject(admin.ID, "first", testNow)

	fx.userRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)
	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)

	output := fx.service.RejectRequest(ctx, request.ID, admin.ID, "second")

	assert.False(t, output.Success)
	assert.Equal(t, policy.ReasonAlreadyReviewed, output.Message)
	assert.Equal(t, "first", request.RejectionReason)
}

func TestStoreManagerRequests_RequestNotFound(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	admin := newTestAdmin()
	requestID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)
	fx.requestRepo.EXPECT().FindByID(ctx, requestID).Return(nil, repository.ErrRequestNotFound)

	output := fx.service.RejectRequest(ctx, requestID, admin.ID, "")

	assert.False(t, output.Success)
	assert.ErrorIs(t, output.Failure, domainerrors.ErrRequestNotFound)
}

func TestStoreManagerRequests_GetSystemStatus(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	admin := newTestAdmin()

	fx.userRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)
	fx.userRepo.EXPECT().FindAll(ctx).Return([]*entity.User{admin, newTestUser(entity.RoleCustomer, "c@example.com")}, nil)

	output := fx.service.GetSystemStatus(ctx, admin.ID)

	require.True(t, output.Success, output.Message)
	assert.Equal(t, policy.SystemStatus{IsInitialized: true, NeedsAdmin: false, AdminCount: 1}, output.Status)
}
