package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/policy"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/clock"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:       4,
			MaxLoginAttempts: 5,
			LockDuration:     30 * time.Minute,
		},
	}
}

func newTestPolicies(c *clock.Fixed) (*policy.AdminManagementPolicy, *policy.StoreManagerApprovalPolicy) {
	admin := policy.NewAdminManagementPolicy(c)

	return admin, policy.NewStoreManagerApprovalPolicy(admin, c)
}

func newTestUser(role entity.Role, email string) *entity.User {
	return entity.NewUser(entity.NewUserParams{
		ID:           uuid.New(),
		Email:        email,
		Name:         "Test " + role.String(),
		PasswordHash: "hashed_password",
		Role:         role,
	}, testNow.Add(-24*time.Hour))
}

func newTestAdmin() *entity.User {
	return newTestUser(entity.RoleAdmin, "admin@example.com")
}

func newPendingRegistration(applicantID uuid.UUID) (*entity.StoreManagerProfile, *entity.Request) {
	profile := entity.NewStoreManagerProfile(entity.NewStoreManagerProfileParams{UserID: applicantID}, testNow)
	request := entity.NewRequest(entity.NewRequestParams{
		Type:        entity.RequestTypeAccountRegister,
		RequestedBy: applicantID,
		RequestData: entity.RequestData{
			"name":         "M",
			"email":        "m@s.com",
			"phone":        "1",
			"storeName":    "Corner Shop",
			"storeAddress": "1 Main St",
		},
	}, testNow)

	return profile, request
}

// expectTransaction runs the transaction body against a fresh factory
// prepared by configure, returning whatever the body returns.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, configure func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			configure(factory)

			return fn(factory)
		}).
		Once()
}
