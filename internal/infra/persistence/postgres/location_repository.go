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

// locationRepository implements the domain.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// CreateLocation persists a new location for a company.
func (repo *locationRepository) CreateLocation(ctx context.Context, location *entity.CompanyLocation) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrPrimaryLocationConflict
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCompanyNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required location information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	// Update the entity with generated values
	location.ID = locationM.ID
	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// FindLocationByID retrieves a location by its unique ID.
func (repo *locationRepository) FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.CompanyLocation, error) {
	var locationM model.CompanyLocationModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by ID")
	}

	return toLocationDomain(&locationM), nil
}

// FindLocationsByCompany retrieves all locations for a company.
func (repo *locationRepository) FindLocationsByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.CompanyLocation, error) {
	var locationModels []*model.CompanyLocationModel
	if err := repo.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("is_primary DESC, created_at ASC").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find locations by company")
	}

	locations := make([]*entity.CompanyLocation, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// FindPrimaryLocationByCompany retrieves the company's primary location.
func (repo *locationRepository) FindPrimaryLocationByCompany(ctx context.Context, companyID uuid.UUID) (*entity.CompanyLocation, error) {
	var locationM model.CompanyLocationModel
	if err := repo.db.WithContext(ctx).
		Where("company_id = ? AND is_primary = ?", companyID, true).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find primary location by company")
	}

	return toLocationDomain(&locationM), nil
}

// UpdateLocation updates an existing location record.
func (repo *locationRepository) UpdateLocation(ctx context.Context, location *entity.CompanyLocation) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Save(locationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrPrimaryLocationConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update location")
	}

	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// DeleteLocation removes a location by its ID.
func (repo *locationRepository) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CompanyLocationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete location")
	}

	// If no rows were affected, it means the location was not found.
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// CountLocationsByCompany returns the total count of locations for a company.
func (repo *locationRepository) CountLocationsByCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.CompanyLocationModel{}).
		Where("company_id = ?", companyID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count locations by company")
	}

	return count, nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM CompanyLocationModel to a domain CompanyLocation entity.
func toLocationDomain(data *model.CompanyLocationModel) *entity.CompanyLocation {
	if data == nil {
		return nil
	}

	return &entity.CompanyLocation{
		ID:          data.ID,
		CompanyID:   data.CompanyID,
		Label:       data.Label,
		FullAddress: data.FullAddress,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		IsPrimary:   data.IsPrimary,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromLocationDomain converts a domain CompanyLocation entity to a GORM CompanyLocationModel.
func fromLocationDomain(data *entity.CompanyLocation) *model.CompanyLocationModel {
	if data == nil {
		return nil
	}

	return &model.CompanyLocationModel{
		ID:          data.ID,
		CompanyID:   data.CompanyID,
		Label:       data.Label,
		FullAddress: data.FullAddress,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		IsPrimary:   data.IsPrimary,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
