package postgres

import (
	"context"
	"strings"

	"detailers/internal/domain/entity"
	domainerrors "detailers/internal/domain/errors"
	"detailers/internal/domain/repository"
	"detailers/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ownerRepository implements the domain.OwnerRepository interface.
type ownerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository is the constructor for ownerRepository.
func NewOwnerRepository(db *gorm.DB) repository.OwnerRepository {
	return &ownerRepository{db: db}
}

// CreateOwner persists a new owner account. Emails are stored lowercased.
func (repo *ownerRepository) CreateOwner(ctx context.Context, owner *entity.Owner) error {
	ownerM := fromOwnerDomain(owner)

	if err := repo.db.WithContext(ctx).Create(ownerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create owner")
	}

	// Update the entity with generated values
	owner.ID = ownerM.ID
	owner.CreatedAt = ownerM.CreatedAt
	owner.UpdatedAt = ownerM.UpdatedAt

	return nil
}

// FindOwnerByID retrieves an owner by its unique ID.
func (repo *ownerRepository) FindOwnerByID(ctx context.Context, id uuid.UUID) (*entity.Owner, error) {
	var ownerM model.OwnerModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ownerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOwnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find owner by ID")
	}

	return toOwnerDomain(&ownerM), nil
}

// FindOwnerByEmail retrieves an owner by email, case-insensitive.
func (repo *ownerRepository) FindOwnerByEmail(ctx context.Context, email string) (*entity.Owner, error) {
	var ownerM model.OwnerModel
	if err := repo.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		First(&ownerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOwnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find owner by email")
	}

	return toOwnerDomain(&ownerM), nil
}

// UpdateOwner updates an existing owner record, including roles.
func (repo *ownerRepository) UpdateOwner(ctx context.Context, owner *entity.Owner) error {
	ownerM := fromOwnerDomain(owner)

	if err := repo.db.WithContext(ctx).Save(ownerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update owner")
	}

	owner.UpdatedAt = ownerM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toOwnerDomain converts a GORM OwnerModel to a domain Owner entity.
func toOwnerDomain(data *model.OwnerModel) *entity.Owner {
	if data == nil {
		return nil
	}

	return &entity.Owner{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		DisplayName:  data.DisplayName,
		Roles:        unmarshalStringList(data.Roles),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromOwnerDomain converts a domain Owner entity to a GORM OwnerModel.
func fromOwnerDomain(data *entity.Owner) *model.OwnerModel {
	if data == nil {
		return nil
	}

	return &model.OwnerModel{
		ID:           data.ID,
		Email:        strings.ToLower(data.Email),
		PasswordHash: data.PasswordHash,
		DisplayName:  data.DisplayName,
		Roles:        marshalStringList(data.Roles),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
