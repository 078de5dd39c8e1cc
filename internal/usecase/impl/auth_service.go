package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
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

const (
	defaultMaxLoginAttempts = 5
	defaultLockDuration     = 30 * time.Minute
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo         repository.UserRepository
	profileRepo      repository.StoreManagerProfileRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	clock            service.Clock
	approvalPolicy   *policy.StoreManagerApprovalPolicy
	maxLoginAttempts int
	lockDuration     time.Duration
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	ProfileRepo    repository.StoreManagerProfileRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	Clock          service.Clock
	ApprovalPolicy *policy.StoreManagerApprovalPolicy
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAuthService creates the login use case.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	maxLoginAttempts := defaultMaxLoginAttempts
	lockDuration := defaultLockDuration
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.MaxLoginAttempts > 0 {
			maxLoginAttempts = params.Config.Auth.MaxLoginAttempts
		}
		if params.Config.Auth.LockDuration > 0 {
			lockDuration = params.Config.Auth.LockDuration
		}
	}

	return &authService{
		userRepo:         params.UserRepo,
		profileRepo:      params.ProfileRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		clock:            params.Clock,
		approvalPolicy:   params.ApprovalPolicy,
		maxLoginAttempts: maxLoginAttempts,
		lockDuration:     lockDuration,
		logger:           params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates a user. Failed passwords count towards a temporary
// lock, and store managers must hold an approved profile.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) *usecase.LoginOutput {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	failed := func(outcome usecase.Outcome) *usecase.LoginOutput {
		return &usecase.LoginOutput{Outcome: outcome}
	}
	generic := domainerrors.ErrInternalError.WithMessage("Login failed")

	email := entity.NormalizeEmail(input.Email)
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "unknown email"))

			return failed(usecase.Rejected(domainerrors.ErrInvalidCredentials, ""))
		}

		return failed(usecase.FromError(errors.Wrap(err, "failed to find user by email"), generic))
	}

	if user.ID == uuid.Nil {
		srv.log(ctx).Error("Loaded user without identifier", slog.String("email", email))

		return failed(usecase.Rejected(domainerrors.ErrInternalError, "Invalid user record"))
	}

	now := srv.clock.Now()
	if user.IsAccountLocked(now) {
		srv.log(ctx).Warn("Login refused for locked account", slog.Any("userID", user.ID))

		return failed(usecase.Rejected(domainerrors.ErrAccountLocked, policy.ReasonAccountLocked))
	}

	if !srv.hasher.Compare(input.Password, user.PasswordHash) {
		return srv.recordFailedAttempt(ctx, user, now)
	}

	var profile *entity.StoreManagerProfile
	if user.IsStoreManager() {
		profile, err = srv.profileRepo.FindByUserID(ctx, user.ID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				srv.log(ctx).Warn("Store manager without profile tried to log in", slog.Any("userID", user.ID))

				return failed(usecase.Rejected(domainerrors.ErrProfileNotFound, policy.ReasonProfileNotFound))
			}

			return failed(usecase.FromError(errors.Wrap(err, "failed to find store manager profile"), generic))
		}
	}

	if decision := srv.approvalPolicy.CanUserLogin(user, profile); !decision.Allowed {
		srv.log(ctx).Warn("Login not allowed", slog.Any("userID", user.ID), slog.String("reason", decision.Reason))

		return failed(usecase.Rejected(domainerrors.ErrLoginNotAllowed, decision.Reason))
	}

	user.RecordLogin(now)
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return failed(usecase.FromError(errors.Wrap(err, "failed to record login"), generic))
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, entity.Roles{user.Role}.ToStrings())
	if err != nil {
		return failed(usecase.FromError(errors.Wrap(err, "failed to generate tokens"), generic))
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		Outcome:      usecase.Succeeded("Login successful"),
		User:         user,
		Profile:      profile,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}
}

func (srv *authService) recordFailedAttempt(ctx context.Context, user *entity.User, now time.Time) *usecase.LoginOutput {
	attempts := user.IncrementLoginAttempts(now)
	locked := attempts >= srv.maxLoginAttempts
	if locked {
		user.LockAccount(now.Add(srv.lockDuration), now)
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to persist login attempt", slog.Any("userID", user.ID), slog.Any("error", err))

		return &usecase.LoginOutput{Outcome: usecase.FromError(errors.Wrap(err, "failed to record login attempt"), domainerrors.ErrInternalError.WithMessage("Login failed"))}
	}

	srv.log(ctx).Warn("Login failed", slog.Any("userID", user.ID), slog.Int("attempts", attempts), slog.Bool("locked", locked))

	if locked {
		return &usecase.LoginOutput{Outcome: usecase.Rejected(domainerrors.ErrAccountLocked, policy.ReasonAccountLocked)}
	}

	return &usecase.LoginOutput{Outcome: usecase.Rejected(domainerrors.ErrInvalidCredentials, "")}
}
