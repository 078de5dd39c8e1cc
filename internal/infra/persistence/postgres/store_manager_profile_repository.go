package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeManagerProfileRepository implements the repository.StoreManagerProfileRepository interface.
type storeManagerProfileRepository struct {
	db *gorm.DB
}

// NewStoreManagerProfileRepository is the constructor for storeManagerProfileRepository.
func NewStoreManagerProfileRepository(db *gorm.DB) repository.StoreManagerProfileRepository {
	return &storeManagerProfileRepository{db: db}
}

// FindByUserID retrieves the profile paired with a store manager user.
func (repo *storeManagerProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.StoreManagerProfile, error) {
	var profileM model.StoreManagerProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find store manager profile by user id")
	}

	return toProfileDomain(&profileM), nil
}

// Create persists a new profile. A user can hold at most one profile.
func (repo *storeManagerProfileRepository) Create(ctx context.Context, profile *entity.StoreManagerProfile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		return translateWriteError(err, domainerrors.ErrConflict, domainerrors.ErrValidationFailed, "failed to create store manager profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update overwrites the approval state and store details of an existing profile.
func (repo *storeManagerProfileRepository) Update(ctx context.Context, profile *entity.StoreManagerProfile) error {
	profileM := fromProfileDomain(profile)

	result := repo.db.WithContext(ctx).
		Model(&model.StoreManagerProfileModel{ID: profile.ID}).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(profileM)
	if result.Error != nil {
		return translateWriteError(result.Error, nil, domainerrors.ErrValidationFailed, "failed to update store manager profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

func toProfileDomain(data *model.StoreManagerProfileModel) *entity.StoreManagerProfile {
	if data == nil {
		return nil
	}

	return &entity.StoreManagerProfile{
		ID:           data.ID,
		UserID:       data.UserID,
		IsApproved:   data.IsApproved,
		ApprovedAt:   data.ApprovedAt,
		ApprovedBy:   data.ApprovedBy,
		StoreName:    data.StoreName,
		StoreAddress: data.StoreAddress,
		Notes:        data.Notes,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.StoreManagerProfile) *model.StoreManagerProfileModel {
	if data == nil {
		return nil
	}

	return &model.StoreManagerProfileModel{
		ID:           data.ID,
		UserID:       data.UserID,
		IsApproved:   data.IsApproved,
		ApprovedAt:   data.ApprovedAt,
		ApprovedBy:   data.ApprovedBy,
		StoreName:    data.StoreName,
		StoreAddress: data.StoreAddress,
		Notes:        data.Notes,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
