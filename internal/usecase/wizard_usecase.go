package usecase

import (
	"context"

	"detailers/internal/wizard"
)

// WizardInput carries the matchmaker wizard answers from the frontend.
type WizardInput struct {
	ServicesWanted []string `json:"services_wanted"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	CutoffMiles    float64  `json:"cutoff_miles,omitempty"`
	Limit          int      `json:"limit,omitempty"`
}

// WizardOutput is the scored shortlist returned to the wizard.
type WizardOutput struct {
	Matches []wizard.Match `json:"matches"`
}

// WizardUsecase defines the interface for the matchmaker wizard.
type WizardUsecase interface {
	// MatchDetailers scores directory listings against the wizard answers
	// and returns the shortlist in descending score order.
	MatchDetailers(ctx context.Context, input *WizardInput) (*WizardOutput, error)
}
