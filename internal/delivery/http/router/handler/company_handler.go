package handler

import (
	"log/slog"
	"net/http"

	"detailers/internal/delivery/http/response"
	"detailers/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CompanyHandlerParams holds dependencies for CompanyHandler, injected by Fx.
type CompanyHandlerParams struct {
	fx.In

	CompanyUC usecase.CompanyUsecase
	Logger    *slog.Logger
}

// CompanyHandler holds dependencies for public listing handlers
type CompanyHandler struct {
	companyUC usecase.CompanyUsecase
	logger    *slog.Logger
}

// NewCompanyHandler is the constructor for CompanyHandler
func NewCompanyHandler(params CompanyHandlerParams) *CompanyHandler {
	return &CompanyHandler{
		companyUC: params.CompanyUC,
		logger:    params.Logger,
	}
}

// ListCompaniesRequest represents the query parameters of the listing index
type ListCompaniesRequest struct {
	State   string `query:"state"`
	City    string `query:"city"`
	Service string `query:"service"`
	Limit   int    `query:"limit" validate:"omitempty,min=1"`
}

// ListCompanies handles the public state/city index pages
func (h *CompanyHandler) ListCompanies(c echo.Context) error {
	var req ListCompaniesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	companies, err := h.companyUC.ListCompanies(c.Request().Context(), &usecase.CompanyListInput{
		State:   req.State,
		City:    req.City,
		Service: req.Service,
		Limit:   req.Limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, companies, "Companies retrieved successfully")
}

// GetCompanyBySlug handles retrieving a full listing profile by its URL slug
func (h *CompanyHandler) GetCompanyBySlug(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return response.BadRequest(c, "INVALID_SLUG", "Listing slug is required")
	}

	profile, err := h.companyUC.GetCompanyBySlug(c.Request().Context(), slug)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Company retrieved successfully")
}

// GetCompanyByID handles retrieving a full listing profile by its ID
func (h *CompanyHandler) GetCompanyByID(c echo.Context) error {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid company ID")
	}

	profile, err := h.companyUC.GetCompanyByID(c.Request().Context(), companyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Company retrieved successfully")
}
