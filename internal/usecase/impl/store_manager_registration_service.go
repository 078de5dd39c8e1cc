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

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// storeManagerRegistrationService implements the StoreManagerRegistrationUsecase interface.
type storeManagerRegistrationService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	requestRepo    repository.RequestRepository
	hasher         service.PasswordHasher
	clock          service.Clock
	approvalPolicy *policy.StoreManagerApprovalPolicy
	logger         *slog.Logger
}

// StoreManagerRegistrationServiceParams holds dependencies, injected by Fx.
type StoreManagerRegistrationServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	RequestRepo    repository.RequestRepository
	Hasher         service.PasswordHasher
	Clock          service.Clock
	ApprovalPolicy *policy.StoreManagerApprovalPolicy
	Logger         *slog.Logger
}

// NewStoreManagerRegistrationService creates the store manager registration use case.
func NewStoreManagerRegistrationService(params StoreManagerRegistrationServiceParams) usecase.StoreManagerRegistrationUsecase {
	return &storeManagerRegistrationService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		requestRepo:    params.RequestRepo,
		hasher:         params.Hasher,
		clock:          params.Clock,
		approvalPolicy: params.ApprovalPolicy,
		logger:         params.Logger,
	}
}

func (srv *storeManagerRegistrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterStoreManager creates an unapproved store manager together with its
// profile and the review request an administrator will act on.
func (srv *storeManagerRegistrationService) RegisterStoreManager(ctx context.Context, input *usecase.RegisterStoreManagerInput) *usecase.RegisterStoreManagerOutput {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Info("Starting store manager registration", slog.String("email", email))

	failed := func(outcome usecase.Outcome) *usecase.RegisterStoreManagerOutput {
		return &usecase.RegisterStoreManagerOutput{Outcome: outcome}
	}
	generic := domainerrors.ErrUserCreationFailed.WithMessage("Failed to register store manager")

	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to load users for registration", slog.Any("error", err))

		return failed(usecase.FromError(errors.Wrap(err, "failed to load users"), generic))
	}

	data := policy.StoreManagerData{
		Name:         input.Name,
		Email:        email,
		Phone:        input.Phone,
		StoreName:    input.StoreName,
		StoreAddress: input.StoreAddress,
	}
	if decision := srv.approvalPolicy.CanRegisterAsStoreManager(data, users); !decision.Allowed {
		srv.log(ctx).Warn("Store manager registration refused", slog.String("email", email), slog.String("reason", decision.Reason))

		failure := domainerrors.ErrValidationFailed
		if decision.Reason == policy.ReasonNoAdministrator {
			failure = domainerrors.ErrNoAdministrator
		}

		return failed(usecase.Rejected(failure, decision.Reason))
	}

	existing, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return failed(usecase.FromError(errors.Wrap(err, "failed to check email uniqueness"), generic))
	}
	if existing != nil {
		return failed(srv.rejectExisting(ctx, existing))
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return failed(usecase.FromError(err, domainerrors.ErrPasswordHashFailed))
	}

	user := entity.NewUser(entity.NewUserParams{
		Email:        email,
		Name:         input.Name,
		PasswordHash: hashedPassword,
		Phone:        input.Phone,
		Role:         entity.RoleStoreManager,
	}, srv.clock.Now())
	if !user.IsValid() {
		return failed(usecase.Rejected(domainerrors.ErrInvalidUserData, "Invalid store manager data"))
	}

	profile := srv.approvalPolicy.CreateStoreManagerProfile(user.ID, policy.StoreData{
		StoreName:    input.StoreName,
		StoreAddress: input.StoreAddress,
	})
	request := srv.approvalPolicy.CreateStoreManagerApprovalRequest(data, user.ID)

	// User, profile and request commit together or not at all.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create store manager user")
		}
		if err := repoFactory.ProfileRepo().Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create store manager profile")
		}
		if err := repoFactory.RequestRepo().Create(ctx, request); err != nil {
			return errors.Wrap(err, "failed to create store manager approval request")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))

		return failed(usecase.FromError(err, generic))
	}

	srv.log(ctx).Info("Store manager registered, pending approval", slog.Any("userID", user.ID), slog.Any("requestID", request.ID))

	return &usecase.RegisterStoreManagerOutput{
		Outcome: usecase.Succeeded("Store manager registered successfully. Your account is pending administrator approval."),
		User:    user,
		Profile: profile,
		Request: request,
	}
}

// rejectExisting reports a taken email, telling the applicant when an earlier
// registration under it is still waiting for review.
func (srv *storeManagerRegistrationService) rejectExisting(ctx context.Context, existing *entity.User) usecase.Outcome {
	requests, err := srv.requestRepo.FindByUserAndType(ctx, existing.ID, entity.RequestTypeAccountRegister)
	if err != nil {
		srv.log(ctx).Warn("Failed to look up earlier registration requests", slog.Any("userID", existing.ID), slog.Any("error", err))

		return usecase.Rejected(domainerrors.ErrUserAlreadyExists, "")
	}

	for _, request := range requests {
		if request.IsPending() {
			return usecase.Rejected(domainerrors.ErrUserAlreadyExists, policy.ReasonRegistrationQueued)
		}
	}

	return usecase.Rejected(domainerrors.ErrUserAlreadyExists, "")
}
