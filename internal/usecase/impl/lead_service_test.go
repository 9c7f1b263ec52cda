package impl

import (
	"context"
	"testing"

	"detailers/internal/domain/constants"
	"detailers/internal/domain/entity"
	domainerrors "detailers/internal/domain/errors"
	"detailers/internal/domain/repository"
	"detailers/internal/domain/service"
	mockRepo "detailers/internal/mocks/repository"
	mockSvc "detailers/internal/mocks/service"
	"detailers/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type leadServiceFixtures struct {
	service        usecase.LeadUsecase
	leadRepo       *mockRepo.MockLeadRepository
	companyRepo    *mockRepo.MockCompanyRepository
	claimRepo      *mockRepo.MockClaimRepository
	eventPublisher *mockSvc.MockEventPublisher
}

func createTestLeadService(t *testing.T) leadServiceFixtures {
	leadRepo := mockRepo.NewMockLeadRepository(t)
	companyRepo := mockRepo.NewMockCompanyRepository(t)
	claimRepo := mockRepo.NewMockClaimRepository(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)

	svc := NewLeadService(LeadServiceParams{
		LeadRepo:       leadRepo,
		CompanyRepo:    companyRepo,
		ClaimRepo:      claimRepo,
		EventPublisher: eventPublisher,
		Logger:         newDiscardLogger(),
	})

	return leadServiceFixtures{
		service:        svc,
		leadRepo:       leadRepo,
		companyRepo:    companyRepo,
		claimRepo:      claimRepo,
		eventPublisher: eventPublisher,
	}
}

func TestLeadService_SubmitLead_Success(t *testing.T) {
	fx := createTestLeadService(t)

	ctx := context.Background()
	company := &entity.Company{ID: uuid.New(), Name: "Skyline Detailing"}

	fx.companyRepo.EXPECT().FindCompanyByID(ctx, company.ID).Return(company, nil)
	fx.leadRepo.EXPECT().CreateLead(ctx, mock.AnythingOfType("*entity.Lead")).Return(nil)

	var published *service.LeadEvent
	fx.eventPublisher.EXPECT().
		PublishLeadEvent(ctx, mock.AnythingOfType("*service.LeadEvent")).
		Run(func(ctx context.Context, event *service.LeadEvent) {
			published = event
		}).
		Return(nil)

	lead, err := fx.service.SubmitLead(ctx, &usecase.SubmitLeadInput{
		CompanyID:    company.ID,
		Name:         "Pat Chen",
		Email:        "pat@example.com",
		AircraftType: "Citation XLS",
		Message:      "Full exterior wash and wax, please.",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.LeadStatusNew, lead.Status)
	require.NotNil(t, published)
	assert.Equal(t, constants.EventTypeLeadCreated, published.EventType)
	assert.Equal(t, company.ID.String(), published.CompanyID)
	assert.Contains(t, published.Summary, "Pat Chen")
	assert.Contains(t, published.Summary, "Citation XLS")
}

func TestLeadService_SubmitLead_PublishFailureDoesNotLoseLead(t *testing.T) {
	fx := createTestLeadService(t)

	ctx := context.Background()
	company := &entity.Company{ID: uuid.New(), Name: "Skyline Detailing"}

	fx.companyRepo.EXPECT().FindCompanyByID(ctx, company.ID).Return(company, nil)
	fx.leadRepo.EXPECT().CreateLead(ctx, mock.AnythingOfType("*entity.Lead")).Return(nil)
	fx.eventPublisher.EXPECT().
		PublishLeadEvent(ctx, mock.AnythingOfType("*service.LeadEvent")).
		Return(errors.New("queue down"))

	lead, err := fx.service.SubmitLead(ctx, &usecase.SubmitLeadInput{
		CompanyID: company.ID,
		Name:      "Pat Chen",
		Email:     "pat@example.com",
	})
	require.NoError(t, err)
	assert.NotNil(t, lead)
}

func TestLeadService_SubmitLead_CompanyNotFound(t *testing.T) {
	fx := createTestLeadService(t)

	ctx := context.Background()
	companyID := uuid.New()

	fx.companyRepo.EXPECT().
		FindCompanyByID(ctx, companyID).
		Return(nil, repository.ErrCompanyNotFound)

	_, err := fx.service.SubmitLead(ctx, &usecase.SubmitLeadInput{
		CompanyID: companyID,
		Name:      "Pat Chen",
		Email:     "pat@example.com",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCompanyNotFound)
}

func TestLeadService_ListCompanyLeads_NotOwner(t *testing.T) {
	fx := createTestLeadService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	companyID := uuid.New()

	fx.claimRepo.EXPECT().
		FindVerifiedClaim(ctx, ownerID, companyID).
		Return(nil, repository.ErrClaimNotFound)

	_, err := fx.service.ListCompanyLeads(ctx, ownerID, companyID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotListingOwner)
}

func TestLeadService_UpdateLeadStatus_Success(t *testing.T) {
	fx := createTestLeadService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	lead := &entity.Lead{ID: uuid.New(), CompanyID: uuid.New(), Status: entity.LeadStatusNew}

	fx.leadRepo.EXPECT().FindLeadByID(ctx, lead.ID).Return(lead, nil)
	fx.claimRepo.EXPECT().
		FindVerifiedClaim(ctx, ownerID, lead.CompanyID).
		Return(&entity.Claim{Status: entity.ClaimStatusVerified}, nil)
	fx.leadRepo.EXPECT().UpdateLeadStatus(ctx, lead.ID, entity.LeadStatusContacted).Return(nil)

	updated, err := fx.service.UpdateLeadStatus(ctx, ownerID, lead.ID, entity.LeadStatusContacted)
	require.NoError(t, err)
	assert.Equal(t, entity.LeadStatusContacted, updated.Status)
}

func TestLeadService_UpdateLeadStatus_UnknownStatus(t *testing.T) {
	fx := createTestLeadService(t)

	_, err := fx.service.UpdateLeadStatus(context.Background(), uuid.New(), uuid.New(), entity.LeadStatus("archived"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown lead status")
}
