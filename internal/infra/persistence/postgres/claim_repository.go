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

// claimRepository implements the domain.ClaimRepository interface.
type claimRepository struct {
	db *gorm.DB
}

// NewClaimRepository is the constructor for claimRepository.
func NewClaimRepository(db *gorm.DB) repository.ClaimRepository {
	return &claimRepository{db: db}
}

// CreateClaim persists a new pending claim. The partial unique index on
// pending claims rejects a second open claim for the same listing.
func (repo *claimRepository) CreateClaim(ctx context.Context, claim *entity.Claim) error {
	claimM := fromClaimDomain(claim)

	if err := repo.db.WithContext(ctx).Create(claimM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrClaimAlreadyOpen
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCompanyNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create claim")
	}

	// Update the entity with generated values
	claim.ID = claimM.ID
	claim.CreatedAt = claimM.CreatedAt
	claim.UpdatedAt = claimM.UpdatedAt

	return nil
}

// FindClaimByID retrieves a claim by its unique ID.
func (repo *claimRepository) FindClaimByID(ctx context.Context, id uuid.UUID) (*entity.Claim, error) {
	var claimM model.ClaimModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&claimM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClaimNotFound
		}

		return nil, errors.Wrap(err, "failed to find claim by ID")
	}

	return toClaimDomain(&claimM), nil
}

// FindPendingClaimByCompany retrieves the open claim for a company, if any.
func (repo *claimRepository) FindPendingClaimByCompany(ctx context.Context, companyID uuid.UUID) (*entity.Claim, error) {
	var claimM model.ClaimModel
	if err := repo.db.WithContext(ctx).
		Where("company_id = ? AND status = ?", companyID, string(entity.ClaimStatusPending)).
		First(&claimM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClaimNotFound
		}

		return nil, errors.Wrap(err, "failed to find pending claim by company")
	}

	return toClaimDomain(&claimM), nil
}

// FindClaimsByOwner retrieves all claims filed by an owner, newest first.
func (repo *claimRepository) FindClaimsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Claim, error) {
	var claimModels []*model.ClaimModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&claimModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find claims by owner")
	}

	claims := make([]*entity.Claim, 0, len(claimModels))
	for _, claimM := range claimModels {
		claims = append(claims, toClaimDomain(claimM))
	}

	return claims, nil
}

// FindVerifiedClaim retrieves the verified claim tying an owner to a company.
func (repo *claimRepository) FindVerifiedClaim(ctx context.Context, ownerID, companyID uuid.UUID) (*entity.Claim, error) {
	var claimM model.ClaimModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND company_id = ? AND status = ?",
			ownerID, companyID, string(entity.ClaimStatusVerified)).
		First(&claimM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClaimNotFound
		}

		return nil, errors.Wrap(err, "failed to find verified claim")
	}

	return toClaimDomain(&claimM), nil
}

// UpdateClaim updates an existing claim record.
func (repo *claimRepository) UpdateClaim(ctx context.Context, claim *entity.Claim) error {
	claimM := fromClaimDomain(claim)

	if err := repo.db.WithContext(ctx).Save(claimM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update claim")
	}

	claim.UpdatedAt = claimM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toClaimDomain converts a GORM ClaimModel to a domain Claim entity.
func toClaimDomain(data *model.ClaimModel) *entity.Claim {
	if data == nil {
		return nil
	}

	return &entity.Claim{
		ID:               data.ID,
		CompanyID:        data.CompanyID,
		OwnerID:          data.OwnerID,
		VerificationCode: data.VerificationCode,
		Status:           entity.ClaimStatus(data.Status),
		VerifiedAt:       data.VerifiedAt,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromClaimDomain converts a domain Claim entity to a GORM ClaimModel.
func fromClaimDomain(data *entity.Claim) *model.ClaimModel {
	if data == nil {
		return nil
	}

	return &model.ClaimModel{
		ID:               data.ID,
		CompanyID:        data.CompanyID,
		OwnerID:          data.OwnerID,
		VerificationCode: data.VerificationCode,
		Status:           string(data.Status),
		VerifiedAt:       data.VerifiedAt,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
