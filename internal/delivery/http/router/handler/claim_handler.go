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

// ClaimHandlerParams holds dependencies for ClaimHandler, injected by Fx.
type ClaimHandlerParams struct {
	fx.In

	ClaimUC usecase.ClaimUsecase
	Logger  *slog.Logger
}

// ClaimHandler holds dependencies for listing-claim handlers
type ClaimHandler struct {
	claimUC usecase.ClaimUsecase
	logger  *slog.Logger
}

// NewClaimHandler is the constructor for ClaimHandler
func NewClaimHandler(params ClaimHandlerParams) *ClaimHandler {
	return &ClaimHandler{
		claimUC: params.ClaimUC,
		logger:  params.Logger,
	}
}

// StartClaimRequest represents the request body for opening a claim
type StartClaimRequest struct {
	CompanyID string `json:"company_id" validate:"required,uuid"`
}

// VerifyClaimRequest represents the request body for verifying a claim
type VerifyClaimRequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

// StartClaim handles opening a pending claim on an unclaimed listing
func (h *ClaimHandler) StartClaim(c echo.Context) error {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return err
	}

	var req StartClaimRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid claim input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid company ID")
	}

	claim, err := h.claimUC.StartClaim(c.Request().Context(), ownerID, companyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, claim, "Claim started successfully")
}

// GetClaimInvite handles rendering the QR invite PNG for a pending claim
func (h *ClaimHandler) GetClaimInvite(c echo.Context) error {
	if _, err := getOwnerID(c); err != nil {
		return err
	}

	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid claim ID")
	}

	png, err := h.claimUC.GenerateClaimInvite(c.Request().Context(), claimID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// VerifyClaim handles checking the verification code for a claim
func (h *ClaimHandler) VerifyClaim(c echo.Context) error {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return err
	}

	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid claim ID")
	}

	var req VerifyClaimRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	claim, err := h.claimUC.VerifyClaim(c.Request().Context(), ownerID, claimID, req.Code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, claim, "Claim verified successfully")
}

// RejectClaim handles abandoning a pending claim
func (h *ClaimHandler) RejectClaim(c echo.Context) error {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return err
	}

	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid claim ID")
	}

	claim, err := h.claimUC.RejectClaim(c.Request().Context(), ownerID, claimID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, claim, "Claim rejected successfully")
}

// ListClaims handles retrieving the claims filed by the authenticated owner
func (h *ClaimHandler) ListClaims(c echo.Context) error {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return err
	}

	claims, err := h.claimUC.ListOwnerClaims(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, claims, "Claims retrieved successfully")
}
