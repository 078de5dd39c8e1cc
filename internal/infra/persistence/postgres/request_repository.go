package postgres

import (
	"context"
	"maps"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// requestRepository implements the repository.RequestRepository interface.
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(db *gorm.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

// FindByID retrieves a single request.
func (repo *requestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Request, error) {
	var requestM model.RequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find request by id")
	}

	return toRequestDomain(&requestM), nil
}

// FindByUserAndType retrieves the requests a user filed of the given type, newest first.
func (repo *requestRepository) FindByUserAndType(ctx context.Context, userID uuid.UUID, requestType entity.RequestType) ([]*entity.Request, error) {
	var requestModels []*model.RequestModel

	if err := repo.db.WithContext(ctx).
		Where("requested_by = ? AND type = ?", userID, string(requestType)).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find requests by user and type")
	}

	return toRequestDomains(requestModels), nil
}

// FindAll retrieves every request, newest first.
func (repo *requestRepository) FindAll(ctx context.Context) ([]*entity.Request, error) {
	var requestModels []*model.RequestModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list requests")
	}

	return toRequestDomains(requestModels), nil
}

// Create persists a new request.
func (repo *requestRepository) Create(ctx context.Context, request *entity.Request) error {
	requestM := fromRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		return translateWriteError(err, domainerrors.ErrConflict, domainerrors.ErrInvalidRequestData, "failed to create request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// Update overwrites the review state of an existing request.
func (repo *requestRepository) Update(ctx context.Context, request *entity.Request) error {
	requestM := fromRequestDomain(request)

	result := repo.db.WithContext(ctx).
		Model(&model.RequestModel{ID: request.ID}).
		Select("*").
		Omit("id", "type", "requested_by", "created_at").
		Updates(requestM)
	if result.Error != nil {
		return translateWriteError(result.Error, nil, domainerrors.ErrInvalidRequestData, "failed to update request")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRequestNotFound
	}

	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

func toRequestDomains(requestModels []*model.RequestModel) []*entity.Request {
	requests := make([]*entity.Request, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toRequestDomain(requestM))
	}

	return requests
}

func toRequestDomain(data *model.RequestModel) *entity.Request {
	if data == nil {
		return nil
	}

	return &entity.Request{
		ID:              data.ID,
		Type:            entity.RequestType(data.Type),
		Status:          entity.RequestStatus(data.Status),
		RequestedBy:     data.RequestedBy,
		ReviewedBy:      data.ReviewedBy,
		ReviewedAt:      data.ReviewedAt,
		RejectionReason: data.RejectionReason,
		ReviewNote:      data.ReviewNote,
		RequestData:     entity.RequestData(maps.Clone(data.RequestData)),
		Priority:        entity.RequestPriority(data.Priority),
		Notes:           data.Notes,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromRequestDomain(data *entity.Request) *model.RequestModel {
	if data == nil {
		return nil
	}

	return &model.RequestModel{
		ID:              data.ID,
		Type:            string(data.Type),
		Status:          string(data.Status),
		RequestedBy:     data.RequestedBy,
		ReviewedBy:      data.ReviewedBy,
		ReviewedAt:      data.ReviewedAt,
		RejectionReason: data.RejectionReason,
		ReviewNote:      data.ReviewNote,
		RequestData:     maps.Clone(map[string]any(data.RequestData)),
		Priority:        string(data.Priority),
		Notes:           data.Notes,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
