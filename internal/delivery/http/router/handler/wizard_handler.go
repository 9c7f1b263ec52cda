package handler

import (
	"log/slog"
	"net/http"

	"detailers/internal/delivery/http/response"
	"detailers/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// WizardHandlerParams holds dependencies for WizardHandler, injected by Fx.
type WizardHandlerParams struct {
	fx.In

	WizardUC usecase.WizardUsecase
	Logger   *slog.Logger
}

// WizardHandler holds dependencies for the matchmaker wizard handler
type WizardHandler struct {
	wizardUC usecase.WizardUsecase
	logger   *slog.Logger
}

// NewWizardHandler is the constructor for WizardHandler
func NewWizardHandler(params WizardHandlerParams) *WizardHandler {
	return &WizardHandler{
		wizardUC: params.WizardUC,
		logger:   params.Logger,
	}
}

// MatchRequest represents the wizard questionnaire answers
type MatchRequest struct {
	ServicesWanted []string `json:"services_wanted"`
	Latitude       *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude      *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	CutoffMiles    float64  `json:"cutoff_miles,omitempty" validate:"omitempty,min=0"`
	Limit          int      `json:"limit,omitempty" validate:"omitempty,min=1"`
}

// Match handles scoring directory listings against the wizard answers
func (h *WizardHandler) Match(c echo.Context) error {
	var req MatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wizard input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.wizardUC.MatchDetailers(c.Request().Context(), &usecase.WizardInput{
		ServicesWanted: req.ServicesWanted,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		CutoffMiles:    req.CutoffMiles,
		Limit:          req.Limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Matchmaking completed successfully")
}
