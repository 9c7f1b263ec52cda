// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"detailers/internal/airports"
	"detailers/internal/domain/entity"
	"detailers/internal/proximity"
)

// SearchInput describes one directory search request. At most one anchor
// source is honored: an explicit airport code wins over raw coordinates.
type SearchInput struct {
	Query       string   `json:"query,omitempty"`
	AirportCode string   `json:"airport_code,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`  // Browser geolocation.
	Longitude   *float64 `json:"longitude,omitempty"` // Browser geolocation.
	City        string   `json:"city,omitempty"`
	State       string   `json:"state,omitempty"`
	Service     string   `json:"service,omitempty"`
	RadiusMiles *float64 `json:"radius_miles,omitempty"`
	SortBy      string   `json:"sort_by,omitempty"`
	SortOrder   string   `json:"sort_order,omitempty"`
	Page        int      `json:"page,omitempty"`
	PageSize    int      `json:"page_size,omitempty"`
}

// SearchOutput is one ranked, paginated page of directory results.
type SearchOutput struct {
	Companies    []proximity.RankedCompany `json:"companies"`
	Anchor       *entity.GeoPoint          `json:"anchor,omitempty"`
	AnchorLabel  string                    `json:"anchor_label,omitempty"` // e.g. "MIA - Miami International".
	TotalMatched int                       `json:"total_matched"`
	Page         int                       `json:"page"`
	TotalPages   int                       `json:"total_pages"`
}

// NearbyInput describes a map "near me" lookup around browser coordinates.
type NearbyInput struct {
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	RadiusMiles *float64 `json:"radius_miles,omitempty"`
	Service     string   `json:"service,omitempty"`
}

// NearbyOutput is the full distance-sorted result set inside the radius.
// The map renders everything at once, so there is no pagination.
type NearbyOutput struct {
	Companies []proximity.RankedCompany `json:"companies"`
	Anchor    entity.GeoPoint           `json:"anchor"`
}

// SearchUsecase defines the interface for directory search operations.
type SearchUsecase interface {
	// Search runs a text/proximity search over the directory.
	Search(ctx context.Context, input *SearchInput) (*SearchOutput, error)

	// Nearby returns every listing within the radius of a point, closest
	// first, for the home-page map.
	Nearby(ctx context.Context, input *NearbyInput) (*NearbyOutput, error)

	// ListAirports returns the airport anchors the search understands.
	ListAirports(ctx context.Context) []airports.AirportAnchor
}
