// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"detailers/internal/domain/entity"
	domainerrors "detailers/internal/domain/errors"
	"detailers/internal/domain/repository"
	"detailers/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// companyRepository implements the domain.CompanyRepository interface.
type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository is the constructor for companyRepository.
func NewCompanyRepository(db *gorm.DB) repository.CompanyRepository {
	return &companyRepository{db: db}
}

// CreateCompany persists a new listing.
func (repo *companyRepository) CreateCompany(ctx context.Context, company *entity.Company) error {
	companyM := fromCompanyDomain(company)

	if err := repo.db.WithContext(ctx).Create(companyM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrSlugTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create company")
	}

	// Update the entity with generated values
	company.ID = companyM.ID
	company.CreatedAt = companyM.CreatedAt
	company.UpdatedAt = companyM.UpdatedAt

	return nil
}

// FindCompanyByID retrieves a listing by its unique ID.
func (repo *companyRepository) FindCompanyByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	var companyM model.CompanyModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&companyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, "failed to find company by ID")
	}

	return toCompanyDomain(&companyM), nil
}

// FindCompanyBySlug retrieves a listing by its URL slug. Detail-page reads
// are routed to replicas when any are configured.
func (repo *companyRepository) FindCompanyBySlug(ctx context.Context, slug string) (*entity.Company, error) {
	var companyM model.CompanyModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("slug = ?", slug).
		First(&companyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, "failed to find company by slug")
	}

	return toCompanyDomain(&companyM), nil
}

// ListCompanies retrieves the candidate set for a search, most recent first.
// Text and proximity filtering happen upstream in the proximity engine; only
// the indexed columns are filtered here.
func (repo *companyRepository) ListCompanies(ctx context.Context, filter repository.CompanyFilter) ([]*entity.Company, error) {
	query := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Model(&model.CompanyModel{})

	if filter.State != "" {
		query = query.Where("state = ?", filter.State)
	}
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.Service != "" {
		// jsonb containment against the services array.
		needle, err := json.Marshal([]string{filter.Service})
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode service filter")
		}
		query = query.Where("services @> ?", string(needle))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var companyModels []*model.CompanyModel
	if err := query.Order("created_at DESC").Find(&companyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list companies")
	}

	companies := make([]*entity.Company, 0, len(companyModels))
	for _, companyM := range companyModels {
		companies = append(companies, toCompanyDomain(companyM))
	}

	return companies, nil
}

// UpdateCompany updates an existing listing.
func (repo *companyRepository) UpdateCompany(ctx context.Context, company *entity.Company) error {
	companyM := fromCompanyDomain(company)

	if err := repo.db.WithContext(ctx).Save(companyM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrSlugTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update company")
	}

	// Update the entity with updated timestamp
	company.UpdatedAt = companyM.UpdatedAt

	return nil
}

// MarkClaimed flags a listing as owner-claimed.
func (repo *companyRepository) MarkClaimed(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CompanyModel{}).
		Where("id = ?", id).
		Update("is_claimed", true)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark company claimed")
	}

	// If no rows were affected, it means the company was not found.
	if result.RowsAffected == 0 {
		return repository.ErrCompanyNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCompanyDomain converts a GORM CompanyModel to a domain Company entity.
func toCompanyDomain(data *model.CompanyModel) *entity.Company {
	if data == nil {
		return nil
	}

	company := &entity.Company{
		ID:             data.ID,
		Name:           data.Name,
		Slug:           data.Slug,
		Description:    data.Description,
		TrustScore:     data.TrustScore,
		Tier:           entity.Tier(data.Tier),
		IsClaimed:      data.IsClaimed,
		City:           data.City,
		State:          data.State,
		Services:       unmarshalStringList(data.Services),
		Certifications: unmarshalStringList(data.Certifications),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}

	if data.Latitude != nil && data.Longitude != nil {
		company.Location = &entity.GeoPoint{Lat: *data.Latitude, Lng: *data.Longitude}
	}

	return company
}

// fromCompanyDomain converts a domain Company entity to a GORM CompanyModel.
func fromCompanyDomain(data *entity.Company) *model.CompanyModel {
	if data == nil {
		return nil
	}

	companyM := &model.CompanyModel{
		ID:             data.ID,
		Name:           data.Name,
		Slug:           data.Slug,
		Description:    data.Description,
		TrustScore:     data.TrustScore,
		Tier:           string(data.Tier),
		IsClaimed:      data.IsClaimed,
		City:           data.City,
		State:          data.State,
		Services:       marshalStringList(data.Services),
		Certifications: marshalStringList(data.Certifications),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}

	if data.Location != nil {
		lat, lng := data.Location.Lat, data.Location.Lng
		companyM.Latitude = &lat
		companyM.Longitude = &lng
	}

	return companyM
}
