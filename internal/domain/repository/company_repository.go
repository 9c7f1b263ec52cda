// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"detailers/internal/domain/entity"
	"detailers/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for company persistence.
var (
	// ErrCompanyNotFound is returned when a company listing is not found.
	ErrCompanyNotFound = errors.New("company not found")
	// ErrSlugTaken is returned when creating or renaming a listing to a slug that already exists.
	ErrSlugTaken = errors.New("slug already taken")
)

// CompanyFilter narrows the candidate set fetched for a search. Text and
// proximity filtering happen in memory in the proximity engine; the store
// only pre-filters on the indexed columns.
type CompanyFilter struct {
	State   string
	City    string
	Service string
	Limit   int // 0 means no limit.
}

// CompanyRepository defines the interface for company-listing database operations.
type CompanyRepository interface {
	// CreateCompany persists a new listing.
	CreateCompany(ctx context.Context, company *entity.Company) error

	// FindCompanyByID retrieves a listing by its unique ID.
	FindCompanyByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)

	// FindCompanyBySlug retrieves a listing by its URL slug.
	FindCompanyBySlug(ctx context.Context, slug string) (*entity.Company, error)

	// ListCompanies retrieves the candidate set for a search, most recent first.
	ListCompanies(ctx context.Context, filter CompanyFilter) ([]*entity.Company, error)

	// UpdateCompany updates an existing listing.
	UpdateCompany(ctx context.Context, company *entity.Company) error

	// MarkClaimed flags a listing as owner-claimed.
	MarkClaimed(ctx context.Context, id uuid.UUID) error
}
