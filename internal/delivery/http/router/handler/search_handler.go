// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"detailers/internal/delivery/http/response"
	"detailers/internal/proximity"
	"detailers/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	Logger   *slog.Logger
}

// SearchHandler holds dependencies for directory search handlers
type SearchHandler struct {
	searchUC usecase.SearchUsecase
	logger   *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		searchUC: params.SearchUC,
		logger:   params.Logger,
	}
}

// SearchRequest represents the query parameters of a directory search
type SearchRequest struct {
	Query       string   `query:"q"`
	AirportCode string   `query:"airport"`
	Latitude    *float64 `query:"lat" validate:"omitempty,min=-90,max=90"`
	Longitude   *float64 `query:"lng" validate:"omitempty,min=-180,max=180"`
	City        string   `query:"city"`
	State       string   `query:"state"`
	Service     string   `query:"service"`
	RadiusMiles *float64 `query:"radius_miles" validate:"omitempty,min=0"`
	SortBy      string   `query:"sort_by"`
	SortOrder   string   `query:"sort_order"`
	Page        int      `query:"page" validate:"omitempty,min=1"`
	PageSize    int      `query:"page_size" validate:"omitempty,min=1"`
}

// Search handles a directory search request
func (h *SearchHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.SearchInput{
		Query:       req.Query,
		AirportCode: req.AirportCode,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		City:        req.City,
		State:       req.State,
		Service:     req.Service,
		RadiusMiles: req.RadiusMiles,
		SortBy:      req.SortBy,
		SortOrder:   req.SortOrder,
		Page:        req.Page,
		PageSize:    req.PageSize,
	}

	output, err := h.searchUC.Search(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Search completed successfully")
}

// SearchByAirport handles an airport-anchored directory search. The airport
// code comes from the path; everything else is the regular search surface.
func (h *SearchHandler) SearchByAirport(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.SearchInput{
		Query:       req.Query,
		AirportCode: c.Param("code"),
		Service:     req.Service,
		RadiusMiles: req.RadiusMiles,
		SortBy:      req.SortBy,
		SortOrder:   req.SortOrder,
		Page:        req.Page,
		PageSize:    req.PageSize,
	}
	if input.SortBy == "" {
		// Anchored pages default to closest-first.
		input.SortBy = string(proximity.SortByDistanceKey)
	}

	output, err := h.searchUC.Search(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Search completed successfully")
}

// NearbyRequest represents the query parameters of a map "near me" lookup
type NearbyRequest struct {
	Latitude    float64  `query:"lat" validate:"required,min=-90,max=90"`
	Longitude   float64  `query:"lng" validate:"required,min=-180,max=180"`
	RadiusMiles *float64 `query:"radius_miles" validate:"omitempty,min=0"`
	Service     string   `query:"service"`
}

// Nearby handles the home-page map lookup: everything inside the radius,
// closest first, no pagination.
func (h *SearchHandler) Nearby(c echo.Context) error {
	var req NearbyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid nearby parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.searchUC.Nearby(c.Request().Context(), &usecase.NearbyInput{
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		RadiusMiles: req.RadiusMiles,
		Service:     req.Service,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Nearby companies retrieved successfully")
}

// ListAirports handles listing the airport anchors the search understands
func (h *SearchHandler) ListAirports(c echo.Context) error {
	anchors := h.searchUC.ListAirports(c.Request().Context())

	return response.Success(c, http.StatusOK, anchors, "Airports retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
