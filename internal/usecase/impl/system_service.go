// Package impl contains the implementation of the application's business logic.
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

// systemService implements the SystemUsecase interface.
type systemService struct {
	userRepo    repository.UserRepository
	hasher      service.PasswordHasher
	adminPolicy *policy.AdminManagementPolicy
	logger      *slog.Logger
}

// SystemServiceParams holds dependencies for SystemService, injected by Fx.
type SystemServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	Hasher      service.PasswordHasher
	AdminPolicy *policy.AdminManagementPolicy
	Logger      *slog.Logger
}

// NewSystemService creates the system bootstrap use case.
func NewSystemService(params SystemServiceParams) usecase.SystemUsecase {
	return &systemService{
		userRepo:    params.UserRepo,
		hasher:      params.Hasher,
		adminPolicy: params.AdminPolicy,
		logger:      params.Logger,
	}
}

func (srv *systemService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// InitializeSystem creates the first and only administrator.
func (srv *systemService) InitializeSystem(ctx context.Context, input *usecase.InitializeSystemInput) *usecase.InitializeSystemOutput {
	srv.log(ctx).Info("Starting system initialization", slog.String("email", input.Email))

	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to load users for initialization", slog.Any("error", err))

		return &usecase.InitializeSystemOutput{Outcome: usecase.FromError(errors.Wrap(err, "failed to load users"), domainerrors.ErrInternalError.WithMessage("Failed to initialize system"))}
	}

	if decision := srv.adminPolicy.CanCreateAdmin(users); !decision.Allowed {
		srv.log(ctx).Warn("System already initialized", slog.String("email", input.Email))

		return &usecase.InitializeSystemOutput{Outcome: usecase.Rejected(domainerrors.ErrAdminAlreadyExists, decision.Reason)}
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash administrator password", slog.Any("error", err))

		return &usecase.InitializeSystemOutput{Outcome: usecase.FromError(err, domainerrors.ErrPasswordHashFailed)}
	}

	admin := srv.adminPolicy.CreateFirstAdmin(policy.AdminData{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hashedPassword,
		Phone:        input.Phone,
		Address:      input.Address,
	})
	if !admin.IsValid() {
		return &usecase.InitializeSystemOutput{Outcome: usecase.Rejected(domainerrors.ErrInvalidUserData, "Invalid administrator data")}
	}

	for _, user := range users {
		if entity.NormalizeEmail(user.Email) == admin.Email {
			return &usecase.InitializeSystemOutput{Outcome: usecase.Rejected(domainerrors.ErrUserAlreadyExists, "")}
		}
	}

	if err := srv.userRepo.Create(ctx, admin); err != nil {
		srv.log(ctx).Error("Failed to persist administrator", slog.Any("error", err))

		return &usecase.InitializeSystemOutput{Outcome: usecase.FromError(errors.Wrap(err, "failed to create administrator"), domainerrors.ErrInternalError.WithMessage("Failed to initialize system"))}
	}

	srv.log(ctx).Info("System initialized", slog.Any("adminID", admin.ID))

	return &usecase.InitializeSystemOutput{
		Outcome: usecase.Succeeded("System initialized successfully"),
		Admin:   admin,
	}
}

// CheckInitializationStatus reports bootstrap state, falling back to
// "needs initialization" when users cannot be loaded.
func (srv *systemService) CheckInitializationStatus(ctx context.Context) *usecase.SystemStatusOutput {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to load users for status check", slog.Any("error", err))

		return &usecase.SystemStatusOutput{
			Outcome: usecase.Outcome{
				Success: true,
				Message: "System needs initialization",
				Error:   err.Error(),
			},
			Status: policy.SystemStatus{IsInitialized: false, NeedsAdmin: true},
		}
	}

	status := srv.adminPolicy.GetSystemStatus(users)
	message := "System is initialized"
	if status.NeedsAdmin {
		message = "System needs initialization"
	}

	return &usecase.SystemStatusOutput{
		Outcome: usecase.Succeeded(message),
		Status:  status,
	}
}
