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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type claimServiceFixtures struct {
	service        usecase.ClaimUsecase
	txManager      *mockRepo.MockTransactionManager
	claimRepo      *mockRepo.MockClaimRepository
	companyRepo    *mockRepo.MockCompanyRepository
	qrcodeService  *mockSvc.MockQRCodeService
	eventPublisher *mockSvc.MockEventPublisher
}

func createTestClaimService(t *testing.T) claimServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	claimRepo := mockRepo.NewMockClaimRepository(t)
	companyRepo := mockRepo.NewMockCompanyRepository(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)

	svc := NewClaimService(ClaimServiceParams{
		TxManager:      txManager,
		ClaimRepo:      claimRepo,
		CompanyRepo:    companyRepo,
		QRCodeService:  qrcodeService,
		EventPublisher: eventPublisher,
		Logger:         newDiscardLogger(),
	})

	return claimServiceFixtures{
		service:        svc,
		txManager:      txManager,
		claimRepo:      claimRepo,
		companyRepo:    companyRepo,
		qrcodeService:  qrcodeService,
		eventPublisher: eventPublisher,
	}
}

func TestClaimService_StartClaim_Success(t *testing.T) {
	fx := createTestClaimService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	company := &entity.Company{ID: uuid.New(), Name: "Hangar One Shine"}

	fx.companyRepo.EXPECT().FindCompanyByID(ctx, company.ID).Return(company, nil)
	fx.claimRepo.EXPECT().CreateClaim(ctx, mock.AnythingOfType("*entity.Claim")).Return(nil)

	claim, err := fx.service.StartClaim(ctx, ownerID, company.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.ClaimStatusPending, claim.Status)
	assert.Equal(t, ownerID, claim.OwnerID)
	assert.Len(t, claim.VerificationCode, 6)
	for _, r := range claim.VerificationCode {
		assert.True(t, r >= '0' && r <= '9')
	}
}

func TestClaimService_StartClaim_AlreadyClaimed(t *testing.T) {
	fx := createTestClaimService(t)

	ctx := context.Background()
	company := &entity.Company{ID: uuid.New(), IsClaimed: true}

	fx.companyRepo.EXPECT().FindCompanyByID(ctx, company.ID).Return(company, nil)

	_, err := fx.service.StartClaim(ctx, uuid.New(), company.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCompanyAlreadyClaimed)
}

func TestClaimService_StartClaim_PendingConflict(t *testing.T) {
	fx := createTestClaimService(t)

	ctx := context.Background()
	company := &entity.Company{ID: uuid.New()}

	fx.companyRepo.EXPECT().FindCompanyByID(ctx, company.ID).Return(company, nil)
	fx.claimRepo.EXPECT().
		CreateClaim(ctx, mock.AnythingOfType("*entity.Claim")).
		Return(repository.ErrClaimAlreadyOpen)

	_, err := fx.service.StartClaim(ctx, uuid.New(), company.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrClaimAlreadyOpen)
}

func TestClaimService_GenerateClaimInvite_Success(t *testing.T) {
	fx := createTestClaimService(t)

	ctx := context.Background()
	claim := &entity.Claim{
		ID:        uuid.New(),
		CompanyID: uuid.New(),
		Status:    entity.ClaimStatusPending,
	}
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.claimRepo.EXPECT().FindClaimByID(ctx, claim.ID).Return(claim, nil)
	fx.qrcodeService.EXPECT().GenerateClaimQR(claim.CompanyID, claim.ID).Return(png, nil)

	got, err := fx.service.GenerateClaimInvite(ctx, claim.ID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestClaimService_GenerateClaimInvite_NotPending(t *testing.T) {
	fx := createTestClaimService(t)

	ctx := context.Background()
	claim := &entity.Claim{ID: uuid.New(), Status: entity.ClaimStatusVerified}

	fx.claimRepo.EXPECT().FindClaimByID(ctx, claim.ID).Return(claim, nil)

	_, err := fx.service.GenerateClaimInvite(ctx, claim.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not pending")
}

func TestClaimService_VerifyClaim_Success(t *testing.T) {
	fx := createTestClaimService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	company := &entity.Company{ID: uuid.New(), Name: "Hangar One Shine"}
	claim := &entity.Claim{
		ID:               uuid.New(),
		CompanyID:        company.ID,
		OwnerID:          ownerID,
		VerificationCode: "123456",
		Status:           entity.ClaimStatusPending,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txClaimRepo := mockRepo.NewMockClaimRepository(t)
			txCompanyRepo := mockRepo.NewMockCompanyRepository(t)
			txOwnerRepo := mockRepo.NewMockOwnerRepository(t)

			mockFactory.EXPECT().NewClaimRepository().Return(txClaimRepo)
			mockFactory.EXPECT().NewCompanyRepository().Return(txCompanyRepo)
			mockFactory.EXPECT().NewOwnerRepository().Return(txOwnerRepo)

			txClaimRepo.EXPECT().FindClaimByID(ctx, claim.ID).Return(claim, nil)
			txClaimRepo.EXPECT().
				UpdateClaim(ctx, mock.AnythingOfType("*entity.Claim")).
				Return(nil)
			txCompanyRepo.EXPECT().MarkClaimed(ctx, company.ID).Return(nil)
			txCompanyRepo.EXPECT().FindCompanyByID(ctx, company.ID).Return(company, nil)
			txOwnerRepo.EXPECT().
				FindOwnerByID(ctx, ownerID).
				Return(&entity.Owner{ID: ownerID, Roles: []string{entity.RoleAccount}}, nil)
			txOwnerRepo.EXPECT().
				UpdateOwner(ctx, mock.AnythingOfType("*entity.Owner")).
				Run(func(ctx context.Context, owner *entity.Owner) {
					assert.Contains(t, owner.Roles, entity.RoleOwner)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	var published *service.LeadEvent
	fx.eventPublisher.EXPECT().
		PublishLeadEvent(ctx, mock.AnythingOfType("*service.LeadEvent")).
		Run(func(ctx context.Context, event *service.LeadEvent) {
			published = event
		}).
		Return(nil)

	verified, err := fx.service.VerifyClaim(ctx, ownerID, claim.ID, "123456")
	require.NoError(t, err)

	assert.Equal(t, entity.ClaimStatusVerified, verified.Status)
	require.NotNil(t, verified.VerifiedAt)
	require.NotNil(t, published)
	assert.Equal(t, constants.EventTypeClaimVerified, published.EventType)
}

func TestClaimService_VerifyClaim_CodeMismatch(t *testing.T) {
	fx := createTestClaimService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	claim := &entity.Claim{
		ID:               uuid.New(),
		CompanyID:        uuid.New(),
		OwnerID:          ownerID,
		VerificationCode: "123456",
		Status:           entity.ClaimStatusPending,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txClaimRepo := mockRepo.NewMockClaimRepository(t)
			txCompanyRepo := mockRepo.NewMockCompanyRepository(t)
			txOwnerRepo := mockRepo.NewMockOwnerRepository(t)

			mockFactory.EXPECT().NewClaimRepository().Return(txClaimRepo)
			mockFactory.EXPECT().NewCompanyRepository().Return(txCompanyRepo)
			mockFactory.EXPECT().NewOwnerRepository().Return(txOwnerRepo)

			txClaimRepo.EXPECT().FindClaimByID(ctx, claim.ID).Return(claim, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.VerifyClaim(ctx, ownerID, claim.ID, "000000")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrVerificationCodeMismatch)
}

func TestClaimService_VerifyClaim_WrongOwner(t *testing.T) {
	fx := createTestClaimService(t)

	ctx := context.Background()
	claim := &entity.Claim{
		ID:               uuid.New(),
		CompanyID:        uuid.New(),
		OwnerID:          uuid.New(),
		VerificationCode: "123456",
		Status:           entity.ClaimStatusPending,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txClaimRepo := mockRepo.NewMockClaimRepository(t)
			txCompanyRepo := mockRepo.NewMockCompanyRepository(t)
			txOwnerRepo := mockRepo.NewMockOwnerRepository(t)

			mockFactory.EXPECT().NewClaimRepository().Return(txClaimRepo)
			mockFactory.EXPECT().NewCompanyRepository().Return(txCompanyRepo)
			mockFactory.EXPECT().NewOwnerRepository().Return(txOwnerRepo)

			txClaimRepo.EXPECT().FindClaimByID(ctx, claim.ID).Return(claim, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.VerifyClaim(ctx, uuid.New(), claim.ID, "123456")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrClaimNotFound)
}

func TestClaimService_RejectClaim_Success(t *testing.T) {
	fx := createTestClaimService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	claim := &entity.Claim{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Status:  entity.ClaimStatusPending,
	}

	fx.claimRepo.EXPECT().FindClaimByID(ctx, claim.ID).Return(claim, nil)
	fx.claimRepo.EXPECT().UpdateClaim(ctx, mock.AnythingOfType("*entity.Claim")).Return(nil)

	rejected, err := fx.service.RejectClaim(ctx, ownerID, claim.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ClaimStatusRejected, rejected.Status)
}

func TestClaimService_RejectClaim_WrongOwner(t *testing.T) {
	fx := createTestClaimService(t)

	ctx := context.Background()
	claim := &entity.Claim{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Status:  entity.ClaimStatusPending,
	}

	fx.claimRepo.EXPECT().FindClaimByID(ctx, claim.ID).Return(claim, nil)

	_, err := fx.service.RejectClaim(ctx, uuid.New(), claim.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrClaimNotFound)
}

func TestClaimService_RejectClaim_NotPending(t *testing.T) {
	fx := createTestClaimService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	claim := &entity.Claim{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Status:  entity.ClaimStatusVerified,
	}

	fx.claimRepo.EXPECT().FindClaimByID(ctx, claim.ID).Return(claim, nil)

	_, err := fx.service.RejectClaim(ctx, ownerID, claim.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrClaimNotFound)
}

func TestClaimService_ListOwnerClaims(t *testing.T) {
	fx := createTestClaimService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	expected := []*entity.Claim{{ID: uuid.New(), OwnerID: ownerID}}

	fx.claimRepo.EXPECT().FindClaimsByOwner(ctx, ownerID).Return(expected, nil)

	claims, err := fx.service.ListOwnerClaims(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, expected, claims)
}
