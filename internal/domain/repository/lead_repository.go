package repository

import (
	"context"

	"detailers/internal/domain/entity"
	"detailers/internal/errors"

	"github.com/google/uuid"
)

// ErrLeadNotFound is returned when a lead is not found.
var ErrLeadNotFound = errors.New("lead not found")

// LeadRepository defines the interface for lead database operations.
type LeadRepository interface {
	// CreateLead persists a captured lead.
	CreateLead(ctx context.Context, lead *entity.Lead) error

	// FindLeadByID retrieves a lead by its unique ID.
	FindLeadByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error)

	// FindLeadsByCompany retrieves all leads for a company, newest first.
	FindLeadsByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Lead, error)

	// UpdateLeadStatus transitions a lead to a new status.
	UpdateLeadStatus(ctx context.Context, id uuid.UUID, status entity.LeadStatus) error
}
