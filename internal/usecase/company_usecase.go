package usecase

import (
	"context"

	"detailers/internal/domain/entity"

	"github.com/google/uuid"
)

// MediaItem is a media asset enriched with a time-limited read URL.
type MediaItem struct {
	Asset *entity.MediaAsset `json:"asset"`
	URL   string             `json:"url,omitempty"`
}

// CompanyProfile is the full public view of a directory listing.
type CompanyProfile struct {
	Company   *entity.Company           `json:"company"`
	Locations []*entity.CompanyLocation `json:"locations,omitempty"`
	Media     []MediaItem               `json:"media,omitempty"`
}

// CompanyListInput filters the public listing index.
type CompanyListInput struct {
	State   string `json:"state,omitempty"`
	City    string `json:"city,omitempty"`
	Service string `json:"service,omitempty"`
	Limit   int    `json:"limit,omitempty"`
}

// CompanyUsecase defines the interface for public listing reads.
type CompanyUsecase interface {
	// GetCompanyBySlug loads a full listing profile by its URL slug.
	GetCompanyBySlug(ctx context.Context, slug string) (*CompanyProfile, error)

	// GetCompanyByID loads a full listing profile by its ID.
	GetCompanyByID(ctx context.Context, id uuid.UUID) (*CompanyProfile, error)

	// ListCompanies returns bare listings for state and city index pages.
	ListCompanies(ctx context.Context, input *CompanyListInput) ([]*entity.Company, error)
}
