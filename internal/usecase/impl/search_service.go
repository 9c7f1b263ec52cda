// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	"detailers/config"
	"detailers/internal/airports"
	deliverycontext "detailers/internal/delivery/context"
	"detailers/internal/domain/entity"
	domainerrors "detailers/internal/domain/errors"
	"detailers/internal/domain/repository"
	"detailers/internal/proximity"
	"detailers/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// searchService implements the SearchUsecase interface.
type searchService struct {
	companyRepo repository.CompanyRepository
	config      *config.Config
	logger      *slog.Logger
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	CompanyRepo repository.CompanyRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	cfg := params.Config
	// Fill in sane limits when the search section is missing from config.
	if cfg.Search == nil {
		cfg.Search = &config.SearchConfig{
			DefaultRadiusMiles: 50,
			MaxRadiusMiles:     500,
			DefaultPageSize:    proximity.DefaultPageSize,
			MaxPageSize:        100,
			CandidateLimit:     1000,
		}
	}

	return &searchService{
		companyRepo: params.CompanyRepo,
		config:      cfg,
		logger:      params.Logger,
	}
}

func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search runs a text/proximity search over the directory.
func (srv *searchService) Search(ctx context.Context, input *usecase.SearchInput) (*usecase.SearchOutput, error) {
	anchor, anchorLabel, err := srv.resolveAnchor(input)
	if err != nil {
		return nil, err
	}

	candidates, err := srv.companyRepo.ListCompanies(ctx, repository.CompanyFilter{
		State:   input.State,
		City:    input.City,
		Service: input.Service,
		Limit:   srv.config.Search.CandidateLimit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list search candidates")
	}

	result := proximity.Search(candidates, proximity.Request{
		Anchor:      anchor,
		RadiusMiles: srv.effectiveRadius(input, anchor),
		TextQuery:   input.Query,
		SortKey:     proximity.SortKey(input.SortBy),
		SortOrder:   proximity.SortOrder(input.SortOrder),
		Page:        input.Page,
		PageSize:    srv.effectivePageSize(input.PageSize),
	})

	srv.log(ctx).Debug("Search executed",
		slog.String("query", input.Query),
		slog.String("anchor", anchorLabel),
		slog.Int("candidates", len(candidates)),
		slog.Int("matched", result.TotalMatched))

	return &usecase.SearchOutput{
		Companies:    result.Companies,
		Anchor:       anchor,
		AnchorLabel:  anchorLabel,
		TotalMatched: result.TotalMatched,
		Page:         result.Page,
		TotalPages:   result.TotalPages,
	}, nil
}

// Nearby returns every listing within the radius of a point, closest first.
func (srv *searchService) Nearby(ctx context.Context, input *usecase.NearbyInput) (*usecase.NearbyOutput, error) {
	anchor, err := airports.ResolveUserLocation(input.Latitude, input.Longitude)
	if err != nil {
		return nil, domainerrors.ErrInvalidCoordinate.WrapMessage(err.Error())
	}

	candidates, err := srv.companyRepo.ListCompanies(ctx, repository.CompanyFilter{
		Service: input.Service,
		Limit:   srv.config.Search.CandidateLimit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list nearby candidates")
	}

	radius := srv.config.Search.DefaultRadiusMiles
	if input.RadiusMiles != nil && *input.RadiusMiles > 0 {
		radius = *input.RadiusMiles
	}
	if ceiling := srv.config.Search.MaxRadiusMiles; ceiling > 0 && radius > ceiling {
		radius = ceiling
	}

	within := proximity.FilterByRadius(candidates, anchor, radius)
	ranked := proximity.SortByDistance(within, anchor)

	srv.log(ctx).Debug("Nearby executed",
		slog.Float64("radius_miles", radius),
		slog.Int("candidates", len(candidates)),
		slog.Int("matched", len(ranked)))

	return &usecase.NearbyOutput{Companies: ranked, Anchor: anchor}, nil
}

// resolveAnchor picks the search anchor. An explicit airport code wins over
// raw browser coordinates; neither means no anchor and no distance math.
func (srv *searchService) resolveAnchor(input *usecase.SearchInput) (*entity.GeoPoint, string, error) {
	if input.AirportCode != "" {
		airport, ok := airports.Resolve(input.AirportCode)
		if !ok {
			return nil, "", domainerrors.ErrUnknownAirport.WrapMessage(fmt.Sprintf("unknown airport code %q", input.AirportCode))
		}

		point := airport.Coordinate

		return &point, fmt.Sprintf("%s - %s", airport.Code, airport.Name), nil
	}

	if input.Latitude != nil && input.Longitude != nil {
		point, err := airports.ResolveUserLocation(*input.Latitude, *input.Longitude)
		if err != nil {
			return nil, "", domainerrors.ErrInvalidCoordinate.WrapMessage(err.Error())
		}

		return &point, "your location", nil
	}

	return nil, "", nil
}

// effectiveRadius clamps the requested radius to the configured ceiling and
// falls back to the default radius when an anchor is set without one.
func (srv *searchService) effectiveRadius(input *usecase.SearchInput, anchor *entity.GeoPoint) *float64 {
	if anchor == nil {
		return nil
	}

	radius := srv.config.Search.DefaultRadiusMiles
	if input.RadiusMiles != nil && *input.RadiusMiles > 0 {
		radius = *input.RadiusMiles
	}
	if ceiling := srv.config.Search.MaxRadiusMiles; ceiling > 0 && radius > ceiling {
		radius = ceiling
	}
	if radius <= 0 {
		return nil
	}

	return &radius
}

func (srv *searchService) effectivePageSize(requested int) int {
	if requested <= 0 {
		return srv.config.Search.DefaultPageSize
	}
	if ceiling := srv.config.Search.MaxPageSize; ceiling > 0 && requested > ceiling {
		return ceiling
	}

	return requested
}

// ListAirports returns the airport anchors the search understands.
func (srv *searchService) ListAirports(_ context.Context) []airports.AirportAnchor {
	return airports.All()
}
