package postgres

import (
	"context"

	"detailers/internal/domain/entity"
	domainerrors "detailers/internal/domain/errors"
	"detailers/internal/domain/repository"
	"detailers/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// mediaRepository implements the domain.MediaRepository interface.
type mediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository is the constructor for mediaRepository.
func NewMediaRepository(db *gorm.DB) repository.MediaRepository {
	return &mediaRepository{db: db}
}

// CreateMediaAsset persists metadata for an uploaded asset.
func (repo *mediaRepository) CreateMediaAsset(ctx context.Context, asset *entity.MediaAsset) error {
	assetM := fromMediaDomain(asset)

	if err := repo.db.WithContext(ctx).Create(assetM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCompanyNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create media asset")
	}

	asset.ID = assetM.ID
	asset.CreatedAt = assetM.CreatedAt

	return nil
}

// FindMediaByID retrieves asset metadata by its unique ID.
func (repo *mediaRepository) FindMediaByID(ctx context.Context, id uuid.UUID) (*entity.MediaAsset, error) {
	var assetM model.MediaAssetModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&assetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMediaNotFound
		}

		return nil, errors.Wrap(err, "failed to find media asset by ID")
	}

	return toMediaDomain(&assetM), nil
}

// FindMediaByCompany retrieves all asset metadata for a company, newest first.
func (repo *mediaRepository) FindMediaByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.MediaAsset, error) {
	var assetModels []*model.MediaAssetModel
	if err := repo.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&assetModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find media assets by company")
	}

	assets := make([]*entity.MediaAsset, 0, len(assetModels))
	for _, assetM := range assetModels {
		assets = append(assets, toMediaDomain(assetM))
	}

	return assets, nil
}

// DeleteMediaAsset removes asset metadata by its ID.
func (repo *mediaRepository) DeleteMediaAsset(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MediaAssetModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete media asset")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMediaNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMediaDomain converts a GORM MediaAssetModel to a domain MediaAsset entity.
func toMediaDomain(data *model.MediaAssetModel) *entity.MediaAsset {
	if data == nil {
		return nil
	}

	return &entity.MediaAsset{
		ID:          data.ID,
		CompanyID:   data.CompanyID,
		Kind:        entity.MediaKind(data.Kind),
		BlobKey:     data.BlobKey,
		ContentType: data.ContentType,
		SizeBytes:   data.SizeBytes,
		Caption:     data.Caption,
		CreatedAt:   data.CreatedAt,
	}
}

// fromMediaDomain converts a domain MediaAsset entity to a GORM MediaAssetModel.
func fromMediaDomain(data *entity.MediaAsset) *model.MediaAssetModel {
	if data == nil {
		return nil
	}

	return &model.MediaAssetModel{
		ID:          data.ID,
		CompanyID:   data.CompanyID,
		Kind:        string(data.Kind),
		BlobKey:     data.BlobKey,
		ContentType: data.ContentType,
		SizeBytes:   data.SizeBytes,
		Caption:     data.Caption,
		CreatedAt:   data.CreatedAt,
	}
}
