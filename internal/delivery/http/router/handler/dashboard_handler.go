package handler

import (
	"log/slog"
	"net/http"

	"detailers/internal/delivery/http/response"
	"detailers/internal/domain/entity"
	"detailers/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
	Logger      *slog.Logger
}

// DashboardHandler holds dependencies for owner self-service handlers
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
	logger      *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: params.DashboardUC,
		logger:      params.Logger,
	}
}

// UpdateCompanyRequest represents the request body for editing a listing.
// Nil fields leave the stored value untouched.
type UpdateCompanyRequest struct {
	Name           *string   `json:"name,omitempty"`
	Description    *string   `json:"description,omitempty"`
	City           *string   `json:"city,omitempty"`
	State          *string   `json:"state,omitempty"`
	Services       *[]string `json:"services,omitempty"`
	Certifications *[]string `json:"certifications,omitempty"`
	Latitude       *float64  `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude      *float64  `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
}

// CreateLocationRequest represents the request body for creating a service location
type CreateLocationRequest struct {
	Label       string  `json:"label" validate:"required"`
	FullAddress string  `json:"full_address" validate:"required"`
	Latitude    float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude   float64 `json:"longitude" validate:"required,min=-180,max=180"`
	IsPrimary   bool    `json:"is_primary"`
}

// UpdateLocationRequest represents the request body for updating a service location
type UpdateLocationRequest struct {
	Label       *string  `json:"label,omitempty"`
	FullAddress *string  `json:"full_address,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	IsPrimary   *bool    `json:"is_primary,omitempty"`
}

// UpdateCompanyProfile handles editing the listing's editable fields
func (h *DashboardHandler) UpdateCompanyProfile(c echo.Context) error {
	ownerID, companyID, err := h.getOwnerAndCompanyID(c)
	if err != nil {
		return err
	}

	var req UpdateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateCompanyInput{
		Name:           req.Name,
		Description:    req.Description,
		City:           req.City,
		State:          req.State,
		Services:       req.Services,
		Certifications: req.Certifications,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
	}

	company, err := h.dashboardUC.UpdateCompanyProfile(c.Request().Context(), ownerID, companyID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, company, "Listing updated successfully")
}

// GetCompanyLocations handles retrieving the listing's service locations
func (h *DashboardHandler) GetCompanyLocations(c echo.Context) error {
	ownerID, companyID, err := h.getOwnerAndCompanyID(c)
	if err != nil {
		return err
	}

	locations, err := h.dashboardUC.GetCompanyLocations(c.Request().Context(), ownerID, companyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, locations, "Locations retrieved successfully")
}

// AddCompanyLocation handles adding a service location to the listing
func (h *DashboardHandler) AddCompanyLocation(c echo.Context) error {
	ownerID, companyID, err := h.getOwnerAndCompanyID(c)
	if err != nil {
		return err
	}

	var req CreateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.AddLocationInput{
		Label:       req.Label,
		FullAddress: req.FullAddress,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		IsPrimary:   req.IsPrimary,
	}

	location, err := h.dashboardUC.AddCompanyLocation(c.Request().Context(), ownerID, companyID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, location, "Location created successfully")
}

// UpdateCompanyLocation handles updating a service location
func (h *DashboardHandler) UpdateCompanyLocation(c echo.Context) error {
	ownerID, companyID, err := h.getOwnerAndCompanyID(c)
	if err != nil {
		return err
	}

	locationID, err := uuid.Parse(c.Param("locationID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateLocationInput{
		Label:       req.Label,
		FullAddress: req.FullAddress,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		IsPrimary:   req.IsPrimary,
	}

	location, err := h.dashboardUC.UpdateCompanyLocation(c.Request().Context(), ownerID, companyID, locationID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, location, "Location updated successfully")
}

// DeleteCompanyLocation handles deleting a service location
func (h *DashboardHandler) DeleteCompanyLocation(c echo.Context) error {
	ownerID, companyID, err := h.getOwnerAndCompanyID(c)
	if err != nil {
		return err
	}

	locationID, err := uuid.Parse(c.Param("locationID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	if err := h.dashboardUC.DeleteCompanyLocation(c.Request().Context(), ownerID, companyID, locationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Location deleted successfully"}, "Location deleted successfully")
}

// UploadMedia handles a multipart media upload from the dashboard
func (h *DashboardHandler) UploadMedia(c echo.Context) error {
	ownerID, companyID, err := h.getOwnerAndCompanyID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "A 'file' form field is required")
	}

	kind := entity.MediaKind(c.FormValue("kind"))
	if kind == "" {
		kind = entity.MediaKindPhoto
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	input := &usecase.UploadMediaInput{
		Kind:        kind,
		ContentType: fileHeader.Header.Get("Content-Type"),
		SizeBytes:   fileHeader.Size,
		Caption:     c.FormValue("caption"),
		Body:        file,
	}

	asset, err := h.dashboardUC.UploadMedia(c.Request().Context(), ownerID, companyID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, asset, "Media uploaded successfully")
}

// ListMedia handles retrieving the listing's media with signed read URLs
func (h *DashboardHandler) ListMedia(c echo.Context) error {
	ownerID, companyID, err := h.getOwnerAndCompanyID(c)
	if err != nil {
		return err
	}

	items, err := h.dashboardUC.ListMedia(c.Request().Context(), ownerID, companyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Media retrieved successfully")
}

// DeleteMedia handles deleting a media asset
func (h *DashboardHandler) DeleteMedia(c echo.Context) error {
	ownerID, companyID, err := h.getOwnerAndCompanyID(c)
	if err != nil {
		return err
	}

	mediaID, err := uuid.Parse(c.Param("mediaID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid media ID")
	}

	if err := h.dashboardUC.DeleteMedia(c.Request().Context(), ownerID, companyID, mediaID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Media deleted successfully"}, "Media deleted successfully")
}

// getOwnerAndCompanyID extracts the authenticated owner and the :id path param
func (h *DashboardHandler) getOwnerAndCompanyID(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, response.BadRequest(c, "INVALID_ID", "Invalid company ID")
	}

	return ownerID, companyID, nil
}
