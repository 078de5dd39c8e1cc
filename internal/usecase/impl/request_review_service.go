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

// requestReviewService implements the RequestReviewUsecase interface.
type requestReviewService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	profileRepo    repository.StoreManagerProfileRepository
	requestRepo    repository.RequestRepository
	clock          service.Clock
	approvalPolicy *policy.StoreManagerApprovalPolicy
	logger         *slog.Logger
}

// RequestReviewServiceParams holds dependencies for RequestReviewService, injected by Fx.
type RequestReviewServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	ProfileRepo    repository.StoreManagerProfileRepository
	RequestRepo    repository.RequestRepository
	Clock          service.Clock
	ApprovalPolicy *policy.StoreManagerApprovalPolicy
	Logger         *slog.Logger
}

// NewRequestReviewService creates the generic request review use case.
func NewRequestReviewService(params RequestReviewServiceParams) usecase.RequestReviewUsecase {
	return &requestReviewService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		profileRepo:    params.ProfileRepo,
		requestRepo:    params.RequestRepo,
		clock:          params.Clock,
		approvalPolicy: params.ApprovalPolicy,
		logger:         params.Logger,
	}
}

func (srv *requestReviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ReviewRequest applies an administrator's decision to a pending request and
// runs the side effect its type calls for. The side effect and the request
// status are written in one transaction.
func (srv *requestReviewService) ReviewRequest(ctx context.Context, input *usecase.ReviewRequestInput) *usecase.RequestReviewOutput {
	if input.ReviewerRole != entity.RoleAdmin {
		srv.log(ctx).Warn("Request review denied",
			slog.Any("reviewerID", input.ReviewerID),
			slog.String("role", input.ReviewerRole.String()),
		)

		return &usecase.RequestReviewOutput{Outcome: usecase.Rejected(domainerrors.ErrForbidden, policy.ReasonAdminOnly)}
	}
	if !input.Action.IsValid() {
		return &usecase.RequestReviewOutput{Outcome: usecase.Rejected(domainerrors.ErrValidationFailed, "Invalid review action")}
	}

	request, err := srv.requestRepo.FindByID(ctx, input.RequestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return &usecase.RequestReviewOutput{Outcome: usecase.Rejected(domainerrors.ErrRequestNotFound, "")}
		}

		return &usecase.RequestReviewOutput{Outcome: usecase.FromError(errors.Wrap(err, "failed to load request"), domainerrors.ErrInternalError.WithMessage("Failed to review request"))}
	}

	if !request.CanBeReviewed() {
		return &usecase.RequestReviewOutput{
			Outcome: usecase.Rejected(domainerrors.ErrRequestNotReviewable, "Request has already been processed"),
			Request: request,
		}
	}

	if input.Action == usecase.ReviewActionReject {
		return srv.reject(ctx, request, input)
	}

	switch request.Type {
	case entity.RequestTypeAccountRegister:
		return srv.approveStoreManager(ctx, request, input)
	case entity.RequestTypeCategoryAdd, entity.RequestTypeCategoryUpdate, entity.RequestTypeCategoryDelete:
		return srv.approveCategory(ctx, request, input)
	default:
		return &usecase.RequestReviewOutput{
			Outcome: usecase.Rejected(domainerrors.ErrInvalidRequestType, ""),
			Request: request,
		}
	}
}

func (srv *requestReviewService) approveCategory(ctx context.Context, request *entity.Request, input *usecase.ReviewRequestInput) *usecase.RequestReviewOutput {
	now := srv.clock.Now()
	category := entity.CategoryFromRequest(request.RequestData, now)

	var apply func(repo repository.CategoryRepository) error
	switch request.Type {
	case entity.RequestTypeCategoryAdd:
		if !request.HasValidRequestData() {
			return &usecase.RequestReviewOutput{Outcome: usecase.Rejected(domainerrors.ErrInvalidRequestData, ""), Request: request}
		}
		if category.ID == uuid.Nil {
			category.ID = uuid.New()
		}
		apply = func(repo repository.CategoryRepository) error { return repo.Create(ctx, category) }
	case entity.RequestTypeCategoryUpdate:
		if category.ID == uuid.Nil || !request.HasValidRequestData() {
			return &usecase.RequestReviewOutput{Outcome: usecase.Rejected(domainerrors.ErrInvalidRequestData, ""), Request: request}
		}
		apply = func(repo repository.CategoryRepository) error { return repo.Update(ctx, category) }
	default:
		if category.ID == uuid.Nil {
			return &usecase.RequestReviewOutput{Outcome: usecase.Rejected(domainerrors.ErrInvalidRequestData, ""), Request: request}
		}
		apply = func(repo repository.CategoryRepository) error { return repo.Delete(ctx, category.ID) }
	}

	request.Approve(input.ReviewerID, input.Note, now)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := apply(repoFactory.CategoryRepo()); err != nil {
			return err
		}

		return errors.Wrap(repoFactory.RequestRepo().Update(ctx, request), "failed to update request")
	})
	if err != nil {
		request.RollbackReview(srv.clock.Now())
		srv.log(ctx).Error("Failed to apply category request",
			slog.Any("requestID", request.ID),
			slog.String("type", string(request.Type)),
			slog.Any("error", err),
		)

		if errors.Is(err, repository.ErrCategoryNotFound) {
			return &usecase.RequestReviewOutput{Outcome: usecase.Rejected(domainerrors.ErrCategoryNotFound, ""), Request: request}
		}

		return &usecase.RequestReviewOutput{Outcome: usecase.FromError(err, domainerrors.ErrTransactionFailed.WithMessage("Failed to approve request")), Request: request}
	}

	srv.log(ctx).Info("Category request approved", slog.Any("requestID", request.ID), slog.String("type", string(request.Type)))

	return &usecase.RequestReviewOutput{
		Outcome: usecase.Succeeded("Request approved successfully"),
		Request: request,
	}
}

func (srv *requestReviewService) approveStoreManager(ctx context.Context, request *entity.Request, input *usecase.ReviewRequestInput) *usecase.RequestReviewOutput {
	reviewer, profile, failed := srv.loadApprovalParties(ctx, request, input.ReviewerID)
	if failed != nil {
		return failed
	}

	result := srv.approvalPolicy.ApproveStoreManagerRequest(request, profile, reviewer, input.Note)
	if !result.Success {
		return &usecase.RequestReviewOutput{
			Outcome: usecase.Rejected(failureForReason(result.Message), result.Message),
			Request: request,
			Profile: profile,
		}
	}

	if err := srv.persist(ctx, request, profile); err != nil {
		return &usecase.RequestReviewOutput{Outcome: usecase.FromError(err, domainerrors.ErrTransactionFailed.WithMessage("Failed to approve request"))}
	}

	return &usecase.RequestReviewOutput{
		Outcome: usecase.Succeeded(result.Message),
		Request: request,
		Profile: profile,
	}
}

func (srv *requestReviewService) reject(ctx context.Context, request *entity.Request, input *usecase.ReviewRequestInput) *usecase.RequestReviewOutput {
	var profile *entity.StoreManagerProfile
	if request.IsStoreManagerApprovalRequest() {
		reviewer, loaded, failed := srv.loadApprovalParties(ctx, request, input.ReviewerID)
		if failed != nil {
			return failed
		}
		// An applicant without a profile can still have the request rejected.
		if loaded != nil {
			if result := srv.approvalPolicy.RejectStoreManager(loaded, reviewer, input.Reason); !result.Success {
				return &usecase.RequestReviewOutput{
					Outcome: usecase.Rejected(failureForReason(result.Message), result.Message),
					Request: request,
				}
			}
		}
		profile = loaded
	}

	request.Reject(input.ReviewerID, input.Reason, srv.clock.Now())

	if err := srv.persist(ctx, request, profile); err != nil {
		return &usecase.RequestReviewOutput{Outcome: usecase.FromError(err, domainerrors.ErrTransactionFailed.WithMessage("Failed to reject request"))}
	}

	return &usecase.RequestReviewOutput{
		Outcome: usecase.Succeeded("Request rejected successfully"),
		Request: request,
		Profile: profile,
	}
}

// loadApprovalParties loads the reviewing user and the applicant's profile.
// A missing profile is left to the policy to report.
func (srv *requestReviewService) loadApprovalParties(
	ctx context.Context,
	request *entity.Request,
	reviewerID uuid.UUID,
) (*entity.User, *entity.StoreManagerProfile, *usecase.RequestReviewOutput) {
	reviewer, err := srv.userRepo.FindByID(ctx, reviewerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil, &usecase.RequestReviewOutput{Outcome: usecase.Rejected(domainerrors.ErrUnauthorized, policy.ReasonNotAuthenticated)}
		}

		return nil, nil, &usecase.RequestReviewOutput{Outcome: usecase.FromError(errors.Wrap(err, "failed to load reviewer"), domainerrors.ErrInternalError)}
	}

	profile, err := srv.profileRepo.FindByUserID(ctx, request.RequestedBy)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return nil, nil, &usecase.RequestReviewOutput{Outcome: usecase.FromError(errors.Wrap(err, "failed to load store manager profile"), domainerrors.ErrInternalError)}
		}
		profile = nil
	}

	return reviewer, profile, nil
}

func (srv *requestReviewService) persist(ctx context.Context, request *entity.Request, profile *entity.StoreManagerProfile) error {
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
		srv.log(ctx).Error("Failed to persist request review", slog.Any("requestID", request.ID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Request reviewed", slog.Any("requestID", request.ID), slog.String("status", string(request.Status)))

	return nil
}
