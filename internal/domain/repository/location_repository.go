package repository

import (
	"context"

	"detailers/internal/domain/entity"
	"detailers/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for location persistence.
var (
	// ErrLocationNotFound is returned when a company location is not found.
	ErrLocationNotFound = errors.New("location not found")
	// ErrPrimaryLocationConflict is returned when trying to set a second primary location for a company.
	ErrPrimaryLocationConflict = errors.New("company already has a primary location")
)

// LocationRepository defines the interface for company-location database operations.
type LocationRepository interface {
	// CreateLocation persists a new location for a company.
	CreateLocation(ctx context.Context, location *entity.CompanyLocation) error

	// FindLocationByID retrieves a location by its unique ID.
	FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.CompanyLocation, error)

	// FindLocationsByCompany retrieves all locations for a company.
	FindLocationsByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.CompanyLocation, error)

	// FindPrimaryLocationByCompany retrieves the company's primary location.
	// Returns ErrLocationNotFound if none is set.
	FindPrimaryLocationByCompany(ctx context.Context, companyID uuid.UUID) (*entity.CompanyLocation, error)

	// UpdateLocation updates an existing location record.
	UpdateLocation(ctx context.Context, location *entity.CompanyLocation) error

	// DeleteLocation removes a location by its ID.
	DeleteLocation(ctx context.Context, id uuid.UUID) error

	// CountLocationsByCompany returns the total count of locations for a company.
	// Used for enforcing the per-plan location limit.
	CountLocationsByCompany(ctx context.Context, companyID uuid.UUID) (int64, error)
}
