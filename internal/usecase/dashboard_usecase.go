package usecase

import (
	"context"
	"io"

	"detailers/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateCompanyInput carries the editable listing fields. Nil pointers leave
// the stored value untouched.
type UpdateCompanyInput struct {
	Name           *string   `json:"name,omitempty"`
	Description    *string   `json:"description,omitempty"`
	City           *string   `json:"city,omitempty"`
	State          *string   `json:"state,omitempty"`
	Services       *[]string `json:"services,omitempty"`
	Certifications *[]string `json:"certifications,omitempty"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
}

// AddLocationInput represents the input for adding a new service location
type AddLocationInput struct {
	Label       string  `json:"label"`
	FullAddress string  `json:"full_address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	IsPrimary   bool    `json:"is_primary"`
}

// UpdateLocationInput represents the input for updating an existing service location
type UpdateLocationInput struct {
	Label       *string  `json:"label,omitempty"`
	FullAddress *string  `json:"full_address,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	IsPrimary   *bool    `json:"is_primary,omitempty"`
}

// UploadMediaInput carries an upload from the dashboard. Body is streamed to
// the blob bucket; only metadata lands in the database.
type UploadMediaInput struct {
	Kind        entity.MediaKind
	ContentType string
	SizeBytes   int64
	Caption     string
	Body        io.Reader
}

// DashboardUsecase defines the owner self-service operations on a claimed
// listing. Every operation checks that the acting owner holds a verified
// claim on the target company.
type DashboardUsecase interface {
	// UpdateCompanyProfile edits the listing's editable fields.
	UpdateCompanyProfile(ctx context.Context, ownerID, companyID uuid.UUID, input *UpdateCompanyInput) (*entity.Company, error)

	// Service location management
	GetCompanyLocations(ctx context.Context, ownerID, companyID uuid.UUID) ([]*entity.CompanyLocation, error)
	AddCompanyLocation(ctx context.Context, ownerID, companyID uuid.UUID, input *AddLocationInput) (*entity.CompanyLocation, error)
	UpdateCompanyLocation(ctx context.Context, ownerID, companyID, locationID uuid.UUID, input *UpdateLocationInput) (*entity.CompanyLocation, error)
	DeleteCompanyLocation(ctx context.Context, ownerID, companyID, locationID uuid.UUID) error

	// Media management
	UploadMedia(ctx context.Context, ownerID, companyID uuid.UUID, input *UploadMediaInput) (*entity.MediaAsset, error)
	ListMedia(ctx context.Context, ownerID, companyID uuid.UUID) ([]MediaItem, error)
	DeleteMedia(ctx context.Context, ownerID, companyID, mediaID uuid.UUID) error
}
