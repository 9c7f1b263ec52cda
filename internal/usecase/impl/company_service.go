package impl

import (
	"context"
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
	defaultMediaURLExpiry = 15 * time.Minute

	// defaultIndexPageLimit caps the state/city index listing size.
	defaultIndexPageLimit = 200
)

// companyService implements the CompanyUsecase interface.
type companyService struct {
	companyRepo  repository.CompanyRepository
	locationRepo repository.LocationRepository
	mediaRepo    repository.MediaRepository
	mediaStorage service.MediaStorage
	urlExpiry    time.Duration
	logger       *slog.Logger
}

// CompanyServiceParams holds dependencies for CompanyService, injected by Fx.
type CompanyServiceParams struct {
	fx.In

	CompanyRepo  repository.CompanyRepository
	LocationRepo repository.LocationRepository
	MediaRepo    repository.MediaRepository
	MediaStorage service.MediaStorage
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCompanyService is the constructor for companyService.
func NewCompanyService(params CompanyServiceParams) usecase.CompanyUsecase {
	urlExpiry := defaultMediaURLExpiry
	if params.Config != nil && params.Config.Media != nil && params.Config.Media.URLExpiry > 0 {
		urlExpiry = params.Config.Media.URLExpiry
	}

	return &companyService{
		companyRepo:  params.CompanyRepo,
		locationRepo: params.LocationRepo,
		mediaRepo:    params.MediaRepo,
		mediaStorage: params.MediaStorage,
		urlExpiry:    urlExpiry,
		logger:       params.Logger,
	}
}

func (srv *companyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCompanyBySlug loads a full listing profile by its URL slug.
func (srv *companyService) GetCompanyBySlug(ctx context.Context, slug string) (*usecase.CompanyProfile, error) {
	company, err := srv.companyRepo.FindCompanyBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, domainerrors.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, "failed to find company by slug")
	}

	return srv.assembleProfile(ctx, company)
}

// GetCompanyByID loads a full listing profile by its ID.
func (srv *companyService) GetCompanyByID(ctx context.Context, id uuid.UUID) (*usecase.CompanyProfile, error) {
	company, err := srv.companyRepo.FindCompanyByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, domainerrors.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, "failed to find company by id")
	}

	return srv.assembleProfile(ctx, company)
}

// ListCompanies returns bare listings for state and city index pages. The
// profile extras (locations, media) are loaded per detail page, not here.
func (srv *companyService) ListCompanies(ctx context.Context, input *usecase.CompanyListInput) ([]*entity.Company, error) {
	limit := input.Limit
	if limit <= 0 || limit > defaultIndexPageLimit {
		limit = defaultIndexPageLimit
	}

	companies, err := srv.companyRepo.ListCompanies(ctx, repository.CompanyFilter{
		State:   input.State,
		City:    input.City,
		Service: input.Service,
		Limit:   limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list companies")
	}

	return companies, nil
}

// assembleProfile attaches locations and signed media URLs to the listing.
func (srv *companyService) assembleProfile(ctx context.Context, company *entity.Company) (*usecase.CompanyProfile, error) {
	locations, err := srv.locationRepo.FindLocationsByCompany(ctx, company.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find locations by company")
	}

	assets, err := srv.mediaRepo.FindMediaByCompany(ctx, company.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find media by company")
	}

	media := make([]usecase.MediaItem, 0, len(assets))
	for _, asset := range assets {
		item := usecase.MediaItem{Asset: asset}

		// A signing failure degrades that asset to metadata-only rather
		// than failing the whole profile read.
		url, err := srv.mediaStorage.SignedURL(ctx, asset.BlobKey, srv.urlExpiry)
		if err != nil {
			srv.log(ctx).Warn("Failed to sign media URL",
				slog.Any("mediaID", asset.ID),
				slog.Any("error", err))
		} else {
			item.URL = url
		}

		media = append(media, item)
	}

	return &usecase.CompanyProfile{
		Company:   company,
		Locations: locations,
		Media:     media,
	}, nil
}
