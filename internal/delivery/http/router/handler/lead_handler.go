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

// LeadHandlerParams holds dependencies for LeadHandler, injected by Fx.
type LeadHandlerParams struct {
	fx.In

	LeadUC usecase.LeadUsecase
	Logger *slog.Logger
}

// LeadHandler holds dependencies for lead capture and follow-up handlers
type LeadHandler struct {
	leadUC usecase.LeadUsecase
	logger *slog.Logger
}

// NewLeadHandler is the constructor for LeadHandler
func NewLeadHandler(params LeadHandlerParams) *LeadHandler {
	return &LeadHandler{
		leadUC: params.LeadUC,
		logger: params.Logger,
	}
}

// SubmitLeadRequest represents the request body of a quote request
type SubmitLeadRequest struct {
	CompanyID    string `json:"company_id" validate:"required,uuid"`
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone"`
	AircraftType string `json:"aircraft_type"`
	Message      string `json:"message"`
}

// UpdateLeadStatusRequest represents the request body of a lead status change
type UpdateLeadStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SubmitLead handles a quote request from a listing page form
func (h *LeadHandler) SubmitLead(c echo.Context) error {
	var req SubmitLeadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lead input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid company ID")
	}

	input := &usecase.SubmitLeadInput{
		CompanyID:    companyID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		AircraftType: req.AircraftType,
		Message:      req.Message,
	}

	lead, err := h.leadUC.SubmitLead(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, lead, "Quote request submitted successfully")
}

// ListCompanyLeads handles retrieving the leads of a listing the owner manages
func (h *LeadHandler) ListCompanyLeads(c echo.Context) error {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return err
	}

	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid company ID")
	}

	leads, err := h.leadUC.ListCompanyLeads(c.Request().Context(), ownerID, companyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, leads, "Leads retrieved successfully")
}

// UpdateLeadStatus handles transitioning a lead to a new status
func (h *LeadHandler) UpdateLeadStatus(c echo.Context) error {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return err
	}

	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid lead ID")
	}

	var req UpdateLeadStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	lead, err := h.leadUC.UpdateLeadStatus(c.Request().Context(), ownerID, leadID, entity.LeadStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, lead, "Lead status updated successfully")
}
