package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "detailers/internal/delivery/context"
	"detailers/internal/domain/constants"
	"detailers/internal/domain/entity"
	domainerrors "detailers/internal/domain/errors"
	"detailers/internal/domain/repository"
	"detailers/internal/domain/service"
	"detailers/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// leadService implements the LeadUsecase interface.
type leadService struct {
	leadRepo       repository.LeadRepository
	companyRepo    repository.CompanyRepository
	claimRepo      repository.ClaimRepository
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// LeadServiceParams holds dependencies for LeadService, injected by Fx.
type LeadServiceParams struct {
	fx.In

	LeadRepo       repository.LeadRepository
	CompanyRepo    repository.CompanyRepository
	ClaimRepo      repository.ClaimRepository
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewLeadService is the constructor for leadService.
func NewLeadService(params LeadServiceParams) usecase.LeadUsecase {
	return &leadService{
		leadRepo:       params.LeadRepo,
		companyRepo:    params.CompanyRepo,
		claimRepo:      params.ClaimRepo,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

func (srv *leadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitLead stores a lead and publishes a lead-created event for the
// notification worker.
func (srv *leadService) SubmitLead(ctx context.Context, input *usecase.SubmitLeadInput) (*entity.Lead, error) {
	company, err := srv.companyRepo.FindCompanyByID(ctx, input.CompanyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, domainerrors.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, "failed to find company by id")
	}

	lead := &entity.Lead{
		ID:           uuid.New(),
		CompanyID:    company.ID,
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		AircraftType: input.AircraftType,
		Message:      input.Message,
		Status:       entity.LeadStatusNew,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := srv.leadRepo.CreateLead(ctx, lead); err != nil {
		return nil, errors.Wrap(err, "failed to create lead")
	}

	// Best-effort publish: a queue outage must not lose the lead.
	srv.publishLeadCreated(ctx, company, lead)

	srv.log(ctx).Info("Lead captured",
		slog.Any("leadID", lead.ID),
		slog.Any("companyID", company.ID))

	return lead, nil
}

// publishLeadCreated emits the lead-created event. Failures are logged, not returned.
func (srv *leadService) publishLeadCreated(ctx context.Context, company *entity.Company, lead *entity.Lead) {
	summary := fmt.Sprintf("New quote request from %s", lead.Name)
	if lead.AircraftType != "" {
		summary = fmt.Sprintf("%s (%s)", summary, lead.AircraftType)
	}

	event := &service.LeadEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventType:   constants.EventTypeLeadCreated,
		LeadID:      lead.ID.String(),
		CompanyID:   company.ID.String(),
		CompanyName: company.Name,
		LeadName:    lead.Name,
		Summary:     summary,
	}

	if err := srv.eventPublisher.PublishLeadEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish lead event",
			slog.Any("leadID", lead.ID),
			slog.Any("error", err))
	}
}

// ListCompanyLeads returns the leads for a listing the owner manages.
func (srv *leadService) ListCompanyLeads(ctx context.Context, ownerID, companyID uuid.UUID) ([]*entity.Lead, error) {
	if err := srv.authorizeOwner(ctx, ownerID, companyID); err != nil {
		return nil, err
	}

	leads, err := srv.leadRepo.FindLeadsByCompany(ctx, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find leads by company")
	}

	return leads, nil
}

// UpdateLeadStatus transitions a lead the owner manages to a new status.
func (srv *leadService) UpdateLeadStatus(ctx context.Context, ownerID, leadID uuid.UUID, status entity.LeadStatus) (*entity.Lead, error) {
	if !status.Valid() {
		return nil, errors.Errorf("unknown lead status: %q", status)
	}

	lead, err := srv.leadRepo.FindLeadByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return nil, domainerrors.ErrLeadNotFound
		}

		return nil, errors.Wrap(err, "failed to find lead by id")
	}

	if err := srv.authorizeOwner(ctx, ownerID, lead.CompanyID); err != nil {
		return nil, err
	}

	if err := srv.leadRepo.UpdateLeadStatus(ctx, leadID, status); err != nil {
		return nil, errors.Wrap(err, "failed to update lead status")
	}

	lead.Status = status
	lead.UpdatedAt = time.Now()

	return lead, nil
}

// authorizeOwner verifies the acting owner holds a verified claim on the company.
func (srv *leadService) authorizeOwner(ctx context.Context, ownerID, companyID uuid.UUID) error {
	_, err := srv.claimRepo.FindVerifiedClaim(ctx, ownerID, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrClaimNotFound) {
			return domainerrors.ErrNotListingOwner
		}

		return errors.Wrap(err, "failed to find verified claim")
	}

	return nil
}
