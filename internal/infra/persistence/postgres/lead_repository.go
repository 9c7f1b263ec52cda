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

// leadRepository implements the domain.LeadRepository interface.
type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository is the constructor for leadRepository.
func NewLeadRepository(db *gorm.DB) repository.LeadRepository {
	return &leadRepository{db: db}
}

// CreateLead persists a captured lead.
func (repo *leadRepository) CreateLead(ctx context.Context, lead *entity.Lead) error {
	leadM := fromLeadDomain(lead)

	if err := repo.db.WithContext(ctx).Create(leadM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCompanyNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create lead")
	}

	// Update the entity with generated values
	lead.ID = leadM.ID
	lead.CreatedAt = leadM.CreatedAt
	lead.UpdatedAt = leadM.UpdatedAt

	return nil
}

// FindLeadByID retrieves a lead by its unique ID.
func (repo *leadRepository) FindLeadByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	var leadM model.LeadModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&leadM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLeadNotFound
		}

		return nil, errors.Wrap(err, "failed to find lead by ID")
	}

	return toLeadDomain(&leadM), nil
}

// FindLeadsByCompany retrieves all leads for a company, newest first.
func (repo *leadRepository) FindLeadsByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Lead, error) {
	var leadModels []*model.LeadModel
	if err := repo.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&leadModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find leads by company")
	}

	leads := make([]*entity.Lead, 0, len(leadModels))
	for _, leadM := range leadModels {
		leads = append(leads, toLeadDomain(leadM))
	}

	return leads, nil
}

// UpdateLeadStatus transitions a lead to a new status.
func (repo *leadRepository) UpdateLeadStatus(ctx context.Context, id uuid.UUID, status entity.LeadStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LeadModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update lead status")
	}

	// If no rows were affected, it means the lead was not found.
	if result.RowsAffected == 0 {
		return repository.ErrLeadNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toLeadDomain converts a GORM LeadModel to a domain Lead entity.
func toLeadDomain(data *model.LeadModel) *entity.Lead {
	if data == nil {
		return nil
	}

	return &entity.Lead{
		ID:           data.ID,
		CompanyID:    data.CompanyID,
		Name:         data.Name,
		Email:        data.Email,
		Phone:        data.Phone,
		AircraftType: data.AircraftType,
		Message:      data.Message,
		Status:       entity.LeadStatus(data.Status),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromLeadDomain converts a domain Lead entity to a GORM LeadModel.
func fromLeadDomain(data *entity.Lead) *model.LeadModel {
	if data == nil {
		return nil
	}

	return &model.LeadModel{
		ID:           data.ID,
		CompanyID:    data.CompanyID,
		Name:         data.Name,
		Email:        data.Email,
		Phone:        data.Phone,
		AircraftType: data.AircraftType,
		Message:      data.Message,
		Status:       string(data.Status),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
