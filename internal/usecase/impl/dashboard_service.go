package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"detailers/config"
	deliverycontext "detailers/internal/delivery/context"
	"detailers/internal/domain/entity"
	domainerrors "detailers/internal/domain/errors"
	"detailers/internal/domain/repository"
	"detailers/internal/domain/service"
	"detailers/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMaxLocations  = 5
	defaultMaxMediaBytes = 25 << 20 // 25 MiB
)

var (
	// ErrLocationLimitReached is returned when the per-plan location limit is reached.
	ErrLocationLimitReached = errors.New("location limit reached")
	// ErrLocationNotFound is returned when a location is not found on the managed listing.
	ErrLocationNotFound = errors.New("location not found")
)

// dashboardService implements the DashboardUsecase interface. Every
// operation authorizes the acting owner against a verified claim on the
// target company before touching anything.
type dashboardService struct {
	companyRepo   repository.CompanyRepository
	locationRepo  repository.LocationRepository
	mediaRepo     repository.MediaRepository
	claimRepo     repository.ClaimRepository
	mediaStorage  service.MediaStorage
	maxLocations  int
	maxMediaBytes int64
	urlExpiry     time.Duration
	logger        *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	CompanyRepo  repository.CompanyRepository
	LocationRepo repository.LocationRepository
	MediaRepo    repository.MediaRepository
	ClaimRepo    repository.ClaimRepository
	MediaStorage service.MediaStorage
	Config       *config.Config
	Logger       *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	maxLocations := defaultMaxLocations
	maxMediaBytes := int64(defaultMaxMediaBytes)
	if params.Config != nil && params.Config.Dashboard != nil {
		if params.Config.Dashboard.MaxLocations > 0 {
			maxLocations = params.Config.Dashboard.MaxLocations
		}
		if params.Config.Dashboard.MaxMediaBytes > 0 {
			maxMediaBytes = params.Config.Dashboard.MaxMediaBytes
		}
	}

	urlExpiry := defaultMediaURLExpiry
	if params.Config != nil && params.Config.Media != nil && params.Config.Media.URLExpiry > 0 {
		urlExpiry = params.Config.Media.URLExpiry
	}

	return &dashboardService{
		companyRepo:   params.CompanyRepo,
		locationRepo:  params.LocationRepo,
		mediaRepo:     params.MediaRepo,
		claimRepo:     params.ClaimRepo,
		mediaStorage:  params.MediaStorage,
		maxLocations:  maxLocations,
		maxMediaBytes: maxMediaBytes,
		urlExpiry:     urlExpiry,
		logger:        params.Logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// authorizeOwner verifies the acting owner holds a verified claim on the company.
func (srv *dashboardService) authorizeOwner(ctx context.Context, ownerID, companyID uuid.UUID) error {
	_, err := srv.claimRepo.FindVerifiedClaim(ctx, ownerID, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrClaimNotFound) {
			return domainerrors.ErrNotListingOwner
		}

		return errors.Wrap(err, "failed to find verified claim")
	}

	return nil
}

// UpdateCompanyProfile edits the listing's editable fields.
func (srv *dashboardService) UpdateCompanyProfile(ctx context.Context, ownerID, companyID uuid.UUID, input *usecase.UpdateCompanyInput) (*entity.Company, error) {
	if err := srv.authorizeOwner(ctx, ownerID, companyID); err != nil {
		return nil, err
	}

	company, err := srv.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, domainerrors.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, "failed to find company by id")
	}

	applyCompanyUpdates(company, input)

	if err := srv.companyRepo.UpdateCompany(ctx, company); err != nil {
		return nil, errors.Wrap(err, "failed to update company")
	}

	srv.log(ctx).Info("Company profile updated", slog.Any("companyID", companyID), slog.Any("ownerID", ownerID))

	return company, nil
}

// applyCompanyUpdates applies the update input to a company. Nil pointers
// leave the stored value untouched.
func applyCompanyUpdates(company *entity.Company, input *usecase.UpdateCompanyInput) {
	if input.Name != nil {
		company.Name = *input.Name
	}
	if input.Description != nil {
		company.Description = *input.Description
	}
	if input.City != nil {
		company.City = *input.City
	}
	if input.State != nil {
		company.State = *input.State
	}
	if input.Services != nil {
		company.Services = *input.Services
	}
	if input.Certifications != nil {
		company.Certifications = *input.Certifications
	}
	if input.Latitude != nil && input.Longitude != nil {
		company.Location = &entity.GeoPoint{Lat: *input.Latitude, Lng: *input.Longitude}
	}
	company.UpdatedAt = time.Now()
}

// GetCompanyLocations retrieves the service locations of a managed listing.
func (srv *dashboardService) GetCompanyLocations(ctx context.Context, ownerID, companyID uuid.UUID) ([]*entity.CompanyLocation, error) {
	if err := srv.authorizeOwner(ctx, ownerID, companyID); err != nil {
		return nil, err
	}

	locations, err := srv.locationRepo.FindLocationsByCompany(ctx, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find locations by company")
	}

	return locations, nil
}

// AddCompanyLocation adds a new service location, honoring the per-plan limit.
func (srv *dashboardService) AddCompanyLocation(ctx context.Context, ownerID, companyID uuid.UUID, input *usecase.AddLocationInput) (*entity.CompanyLocation, error) {
	if err := srv.authorizeOwner(ctx, ownerID, companyID); err != nil {
		return nil, err
	}

	count, err := srv.locationRepo.CountLocationsByCompany(ctx, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count locations by company")
	}
	if count >= int64(srv.maxLocations) {
		return nil, ErrLocationLimitReached
	}

	location := &entity.CompanyLocation{
		ID:          uuid.New(),
		CompanyID:   companyID,
		Label:       input.Label,
		FullAddress: input.FullAddress,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		IsPrimary:   input.IsPrimary,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := srv.locationRepo.CreateLocation(ctx, location); err != nil {
		return nil, errors.Wrap(err, "failed to create location")
	}

	return location, nil
}

// UpdateCompanyLocation updates an existing service location.
func (srv *dashboardService) UpdateCompanyLocation(ctx context.Context, ownerID, companyID, locationID uuid.UUID, input *usecase.UpdateLocationInput) (*entity.CompanyLocation, error) {
	if err := srv.authorizeOwner(ctx, ownerID, companyID); err != nil {
		return nil, err
	}

	location, err := srv.findCompanyLocation(ctx, companyID, locationID)
	if err != nil {
		return nil, err
	}

	applyLocationUpdates(location, input)

	if err := srv.locationRepo.UpdateLocation(ctx, location); err != nil {
		return nil, errors.Wrap(err, "failed to update location")
	}

	return location, nil
}

// applyLocationUpdates applies the update input to a location.
func applyLocationUpdates(location *entity.CompanyLocation, input *usecase.UpdateLocationInput) {
	if input.Label != nil {
		location.Label = *input.Label
	}
	if input.FullAddress != nil {
		location.FullAddress = *input.FullAddress
	}
	if input.Latitude != nil {
		location.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		location.Longitude = *input.Longitude
	}
	if input.IsPrimary != nil {
		location.IsPrimary = *input.IsPrimary
	}
	location.UpdatedAt = time.Now()
}

// DeleteCompanyLocation removes a service location from a managed listing.
func (srv *dashboardService) DeleteCompanyLocation(ctx context.Context, ownerID, companyID, locationID uuid.UUID) error {
	if err := srv.authorizeOwner(ctx, ownerID, companyID); err != nil {
		return err
	}

	if _, err := srv.findCompanyLocation(ctx, companyID, locationID); err != nil {
		return err
	}

	if err := srv.locationRepo.DeleteLocation(ctx, locationID); err != nil {
		return errors.Wrap(err, "failed to delete location")
	}

	return nil
}

// findCompanyLocation loads a location and verifies it belongs to the company.
func (srv *dashboardService) findCompanyLocation(ctx context.Context, companyID, locationID uuid.UUID) (*entity.CompanyLocation, error) {
	location, err := srv.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by id")
	}

	if location.CompanyID != companyID {
		return nil, ErrLocationNotFound
	}

	return location, nil
}

// UploadMedia streams an upload into the blob bucket and records its metadata.
func (srv *dashboardService) UploadMedia(ctx context.Context, ownerID, companyID uuid.UUID, input *usecase.UploadMediaInput) (*entity.MediaAsset, error) {
	if err := srv.authorizeOwner(ctx, ownerID, companyID); err != nil {
		return nil, err
	}

	if !input.Kind.Valid() {
		return nil, errors.Errorf("unknown media kind: %q", input.Kind)
	}
	if input.SizeBytes > srv.maxMediaBytes {
		return nil, domainerrors.ErrMediaTooLarge.WrapMessage(
			fmt.Sprintf("upload of %d bytes exceeds the %d byte limit", input.SizeBytes, srv.maxMediaBytes))
	}

	asset := &entity.MediaAsset{
		ID:          uuid.New(),
		CompanyID:   companyID,
		Kind:        input.Kind,
		ContentType: input.ContentType,
		SizeBytes:   input.SizeBytes,
		Caption:     input.Caption,
		CreatedAt:   time.Now(),
	}
	asset.BlobKey = mediaBlobKey(companyID, asset.ID)

	if err := srv.mediaStorage.Put(ctx, asset.BlobKey, input.ContentType, input.Body); err != nil {
		return nil, errors.Wrap(err, "failed to store media bytes")
	}

	if err := srv.mediaRepo.CreateMediaAsset(ctx, asset); err != nil {
		// Orphaned blobs are cheaper than lost metadata; clean up best-effort.
		if deleteErr := srv.mediaStorage.Delete(ctx, asset.BlobKey); deleteErr != nil {
			srv.log(ctx).Warn("Failed to clean up blob after metadata failure",
				slog.String("blobKey", asset.BlobKey),
				slog.Any("error", deleteErr))
		}

		return nil, errors.Wrap(err, "failed to create media asset")
	}

	srv.log(ctx).Info("Media uploaded",
		slog.Any("companyID", companyID),
		slog.Any("mediaID", asset.ID),
		slog.Int64("sizeBytes", asset.SizeBytes))

	return asset, nil
}

// mediaBlobKey builds the bucket key for an asset. Keys are namespaced per
// company so a listing's assets can be enumerated and purged together.
func mediaBlobKey(companyID, assetID uuid.UUID) string {
	return fmt.Sprintf("companies/%s/media/%s", companyID, assetID)
}

// ListMedia returns the listing's media with signed read URLs.
func (srv *dashboardService) ListMedia(ctx context.Context, ownerID, companyID uuid.UUID) ([]usecase.MediaItem, error) {
	if err := srv.authorizeOwner(ctx, ownerID, companyID); err != nil {
		return nil, err
	}

	assets, err := srv.mediaRepo.FindMediaByCompany(ctx, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find media by company")
	}

	items := make([]usecase.MediaItem, 0, len(assets))
	for _, asset := range assets {
		item := usecase.MediaItem{Asset: asset}
		url, err := srv.mediaStorage.SignedURL(ctx, asset.BlobKey, srv.urlExpiry)
		if err != nil {
			srv.log(ctx).Warn("Failed to sign media URL", slog.Any("mediaID", asset.ID), slog.Any("error", err))
		} else {
			item.URL = url
		}
		items = append(items, item)
	}

	return items, nil
}

// DeleteMedia removes an asset's bytes and metadata.
func (srv *dashboardService) DeleteMedia(ctx context.Context, ownerID, companyID, mediaID uuid.UUID) error {
	if err := srv.authorizeOwner(ctx, ownerID, companyID); err != nil {
		return err
	}

	asset, err := srv.mediaRepo.FindMediaByID(ctx, mediaID)
	if err != nil {
		if errors.Is(err, repository.ErrMediaNotFound) {
			return domainerrors.ErrMediaNotFound
		}

		return errors.Wrap(err, "failed to find media by id")
	}
	if asset.CompanyID != companyID {
		return domainerrors.ErrMediaNotFound
	}

	if err := srv.mediaRepo.DeleteMediaAsset(ctx, mediaID); err != nil {
		return errors.Wrap(err, "failed to delete media asset")
	}

	// The metadata row is gone; a failed blob delete leaves an unreferenced
	// object that a cleanup job can reap later.
	if err := srv.mediaStorage.Delete(ctx, asset.BlobKey); err != nil {
		srv.log(ctx).Warn("Failed to delete media blob",
			slog.String("blobKey", asset.BlobKey),
			slog.Any("error", err))
	}

	return nil
}
