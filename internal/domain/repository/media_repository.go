package repository

import (
	"context"

	"detailers/internal/domain/entity"
	"detailers/internal/errors"

	"github.com/google/uuid"
)

// ErrMediaNotFound is returned when a media asset is not found.
var ErrMediaNotFound = errors.New("media asset not found")

// MediaRepository defines the interface for media-asset metadata operations.
// Asset bytes live in the media blob bucket, not in the database.
type MediaRepository interface {
	// CreateMediaAsset persists metadata for an uploaded asset.
	CreateMediaAsset(ctx context.Context, asset *entity.MediaAsset) error

	// FindMediaByID retrieves asset metadata by its unique ID.
	FindMediaByID(ctx context.Context, id uuid.UUID) (*entity.MediaAsset, error)

	// FindMediaByCompany retrieves all asset metadata for a company, newest first.
	FindMediaByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.MediaAsset, error)

	// DeleteMediaAsset removes asset metadata by its ID.
	DeleteMediaAsset(ctx context.Context, id uuid.UUID) error
}
