package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/policy"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// storeManagerRequestService implements the StoreManagerRequestUsecase interface.
type storeManagerRequestService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	profileRepo    repository.StoreManagerProfileRepository
	requestRepo    repository.RequestRepository
	clock          service.Clock
	adminPolicy    *policy.AdminManagementPolicy
	approvalPolicy *policy.StoreManagerApprovalPolicy
	logger         *slog.Logger
}

// StoreManagerRequestServiceParams holds dependencies for StoreManagerRequestService, injected by Fx.
type StoreManagerRequestServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	ProfileRepo    repository.StoreManagerProfileRepository
	RequestRepo    repository.RequestRepository
	Clock          service.Clock
	AdminPolicy    *policy.AdminManagementPolicy
	ApprovalPolicy *policy.StoreManagerApprovalPolicy
	Logger         *slog.Logger
}

// NewStoreManagerRequestService creates the administrator review queue use case.
func NewStoreManagerRequestService(params StoreManagerRequestServiceParams) usecase.StoreManagerRequestUsecase {
	return &storeManagerRequestService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		profileRepo:    params.ProfileRepo,
		requestRepo:    params.RequestRepo,
		clock:          params.Clock,
		adminPolicy:    params.AdminPolicy,
		approvalPolicy: params.ApprovalPolicy,
		logger:         params.Logger,
	}
}

func (srv *storeManagerRequestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// authorizeAdmin loads adminID and checks it may work the review queue.
// A non-nil Outcome means the caller must stop.
func (srv *storeManagerRequestService) authorizeAdmin(ctx context.Context, adminID uuid.UUID) (*entity.User, *usecase.Outcome) {
	admin, err := srv.userRepo.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			outcome := usecase.Rejected(domainerrors.ErrUnauthorized, policy.ReasonNotAuthenticated)

			return nil, &outcome
		}
		outcome := usecase.FromError(errors.Wrap(err, "failed to load administrator"), domainerrors.ErrInternalError)

		return nil, &outcome
	}

	if decision := srv.adminPolicy.CanViewStoreManagerRequests(admin); !decision.Allowed {
		srv.log(ctx).Warn("Review queue access denied", slog.Any("userID", adminID), slog.String("reason", decision.Reason))
		outcome := usecase.Rejected(failureForReason(decision.Reason), decision.Reason)

		return nil, &outcome
	}

	return admin, nil
}

// loadRequest returns the request or the outcome to report instead.
func (srv *storeManagerRequestService) loadRequest(ctx context.Context, requestID uuid.UUID) (*entity.Request, *usecase.Outcome) {
	request, err := srv.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			outcome := usecase.Rejected(domainerrors.ErrRequestNotFound, "")

			return nil, &outcome
		}
		outcome := usecase.FromError(errors.Wrap(err, "failed to load request"), domainerrors.ErrInternalError.WithMessage("Failed to load request"))

		return nil, &outcome
	}

	return request, nil
}

// loadProfile returns nil when the applicant has no profile; the policy reports that case.
func (srv *storeManagerRequestService) loadProfile(ctx context.Context, userID uuid.UUID) (*entity.StoreManagerProfile, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load store manager profile")
	}

	return profile, nil
}

// GetPendingRequests lists store manager registrations waiting for review.
func (srv *storeManagerRequestService) GetPendingRequests(ctx context.Context, adminID uuid.UUID) *usecase.PendingRequestsOutput {
	if _, denied := srv.authorizeAdmin(ctx, adminID); denied != nil {
		return &usecase.PendingRequestsOutput{Outcome: *denied}
	}

	requests, err := srv.requestRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to load requests", slog.Any("error", err))

		return &usecase.PendingRequestsOutput{Outcome: usecase.FromError(errors.Wrap(err, "failed to load requests"), domainerrors.ErrInternalError.WithMessage("Failed to load pending requests"))}
	}

	pending := srv.approvalPolicy.GetPendingStoreManagerRequests(requests)

	return &usecase.PendingRequestsOutput{
		Outcome:  usecase.Succeeded("Pending requests retrieved successfully"),
		Requests: pending,
	}
}

// ApproveRequest approves a store manager registration together with its
// profile. Nothing is persisted unless both approvals succeed.
func (srv *storeManagerRequestService) ApproveRequest(ctx context.Context, requestID, adminID uuid.UUID, note string) *usecase.RequestReviewOutput {
	admin, denied := srv.authorizeAdmin(ctx, adminID)
	if denied != nil {
		return &usecase.RequestReviewOutput{Outcome: *denied}
	}

	request, missing := srv.loadRequest(ctx, requestID)
	if missing != nil {
		return &usecase.RequestReviewOutput{Outcome: *missing}
	}

	profile, err := srv.loadProfile(ctx, request.RequestedBy)
	if err != nil {
		return &usecase.RequestReviewOutput{Outcome: usecase.FromError(err, domainerrors.ErrInternalError.WithMessage("Failed to approve request"))}
	}

	result := srv.approvalPolicy.ApproveStoreManagerRequest(request, profile, admin, note)
	if !result.Success {
		srv.log(ctx).Warn("Store manager approval refused",
			slog.Any("requestID", requestID),
			slog.String("reason", result.Message),
		)

		return &usecase.RequestReviewOutput{
			Outcome: usecase.Rejected(failureForReason(result.Message), result.Message),
			Request: request,
			Profile: profile,
		}
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.RequestRepo().Update(ctx, request); err != nil {
			return errors.Wrap(err, "failed to update request")
		}
		if err := repoFactory.ProfileRepo().Update(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to update store manager profile")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to persist store manager approval", slog.Any("requestID", requestID), slog.Any("error", err))

		return &usecase.RequestReviewOutput{Outcome: usecase.FromError(err, domainerrors.ErrTransactionFailed.WithMessage("Failed to approve request"))}
	}

	srv.log(ctx).Info("Store manager request approved", slog.Any("requestID", requestID), slog.Any("adminID", adminID))

	return &usecase.RequestReviewOutput{
		Outcome: usecase.Succeeded(result.Message),
		Request: request,
		Profile: profile,
	}
}

// RejectRequest rejects a pending store manager registration and records the
// reason on the applicant's profile when there is one.
func (srv *storeManagerRequestService) RejectRequest(ctx context.Context, requestID, adminID uuid.UUID, reason string) *usecase.RequestReviewOutput {
	admin, denied := srv.authorizeAdmin(ctx, adminID)
	if denied != nil {
		return &usecase.RequestReviewOutput{Outcome: *denied}
	}

	request, missing := srv.loadRequest(ctx, requestID)
	if missing != nil {
		return &usecase.RequestReviewOutput{Outcome: *missing}
	}

	if !request.Reject(admin.ID, reason, srv.clock.Now()) {
		return &usecase.RequestReviewOutput{
			Outcome: usecase.Rejected(domainerrors.ErrRequestNotReviewable, policy.ReasonAlreadyReviewed),
			Request: request,
		}
	}

	var profile *entity.StoreManagerProfile
	if request.IsStoreManagerApprovalRequest() {
		loaded, err := srv.loadProfile(ctx, request.RequestedBy)
		if err != nil {
			return &usecase.RequestReviewOutput{Outcome: usecase.FromError(err, domainerrors.ErrInternalError.WithMessage("Failed to reject request"))}
		}
		if loaded != nil {
			if result := srv.approvalPolicy.RejectStoreManager(loaded, admin, reason); !result.Success {
				return &usecase.RequestReviewOutput{Outcome: usecase.Rejected(failureForReason(result.Message), result.Message)}
			}
		}
		profile = loaded
	}

	return srv.persistRejection(ctx, request, profile)
}

func (srv *storeManagerRequestService) persistRejection(
	ctx context.Context,
	request *entity.Request,
	profile *entity.StoreManagerProfile,
) *usecase.RequestReviewOutput {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.RequestRepo().Update(ctx, request); err != nil {
			return errors.Wrap(err, "failed to update request")
		}
		if profile == nil {
			return nil
		}

		return errors.Wrap(repoFactory.ProfileRepo().Update(ctx, profile), "failed to update store manager profile")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to persist request rejection", slog.Any("requestID", request.ID), slog.Any("error", err))

		return &usecase.RequestReviewOutput{Outcome: usecase.FromError(err, domainerrors.ErrTransactionFailed.WithMessage("Failed to reject request"))}
	}

	srv.log(ctx).Info("Request rejected", slog.Any("requestID", request.ID))

	return &usecase.RequestReviewOutput{
		Outcome: usecase.Succeeded("Request rejected successfully"),
		Request: request,
		Profile: profile,
	}
}

// GetSystemStatus reports bootstrap state to an administrator.
func (srv *storeManagerRequestService) GetSystemStatus(ctx context.Context, adminID uuid.UUID) *usecase.SystemStatusOutput {
	if _, denied := srv.authorizeAdmin(ctx, adminID); denied != nil {
		return &usecase.SystemStatusOutput{Outcome: *denied}
	}

	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return &usecase.SystemStatusOutput{Outcome: usecase.FromError(errors.Wrap(err, "failed to load users"), domainerrors.ErrInternalError.WithMessage("Failed to get system status"))}
	}

	return &usecase.SystemStatusOutput{
		Outcome: usecase.Succeeded("System status retrieved successfully"),
		Status:  srv.adminPolicy.GetSystemStatus(users),
	}
}
