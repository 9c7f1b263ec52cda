package usecase

import (
	"context"

	"detailers/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitLeadInput is a quote request captured from a listing page form.
type SubmitLeadInput struct {
	CompanyID    uuid.UUID `json:"company_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	AircraftType string    `json:"aircraft_type,omitempty"`
	Message      string    `json:"message,omitempty"`
}

// LeadUsecase defines the interface for lead capture and follow-up.
type LeadUsecase interface {
	// SubmitLead stores a lead and publishes a lead-created event for the
	// notification worker. Publishing is best-effort: a queue outage must
	// not lose the lead.
	SubmitLead(ctx context.Context, input *SubmitLeadInput) (*entity.Lead, error)

	// ListCompanyLeads returns the leads for a listing the owner manages.
	ListCompanyLeads(ctx context.Context, ownerID, companyID uuid.UUID) ([]*entity.Lead, error)

	// UpdateLeadStatus transitions a lead the owner manages to a new status.
	UpdateLeadStatus(ctx context.Context, ownerID, leadID uuid.UUID, status entity.LeadStatus) (*entity.Lead, error)
}
