package impl

import (
	"context"
	"strings"
	"testing"

	"detailers/internal/domain/entity"
	domainerrors "detailers/internal/domain/errors"
	"detailers/internal/domain/repository"
	mockRepo "detailers/internal/mocks/repository"
	mockSvc "detailers/internal/mocks/service"
	"detailers/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dashboardServiceFixtures struct {
	service      usecase.DashboardUsecase
	companyRepo  *mockRepo.MockCompanyRepository
	locationRepo *mockRepo.MockLocationRepository
	mediaRepo    *mockRepo.MockMediaRepository
	claimRepo    *mockRepo.MockClaimRepository
	mediaStorage *mockSvc.MockMediaStorage
}

func createTestDashboardService(t *testing.T) dashboardServiceFixtures {
	companyRepo := mockRepo.NewMockCompanyRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	mediaRepo := mockRepo.NewMockMediaRepository(t)
	claimRepo := mockRepo.NewMockClaimRepository(t)
	mediaStorage := mockSvc.NewMockMediaStorage(t)

	service := NewDashboardService(DashboardServiceParams{
		CompanyRepo:  companyRepo,
		LocationRepo: locationRepo,
		MediaRepo:    mediaRepo,
		ClaimRepo:    claimRepo,
		MediaStorage: mediaStorage,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return dashboardServiceFixtures{
		service:      service,
		companyRepo:  companyRepo,
		locationRepo: locationRepo,
		mediaRepo:    mediaRepo,
		claimRepo:    claimRepo,
		mediaStorage: mediaStorage,
	}
}

func expectVerifiedClaim(fx dashboardServiceFixtures, ctx context.Context, ownerID, companyID uuid.UUID) {
	fx.claimRepo.EXPECT().
		FindVerifiedClaim(ctx, ownerID, companyID).
		Return(&entity.Claim{
			ID:        uuid.New(),
			CompanyID: companyID,
			OwnerID:   ownerID,
			Status:    entity.ClaimStatusVerified,
		}, nil)
}

func TestDashboardService_UpdateCompanyProfile_Success(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	companyID := uuid.New()
	company := &entity.Company{ID: companyID, Name: "Old Name", City: "Miami"}

	expectVerifiedClaim(fx, ctx, ownerID, companyID)
	fx.companyRepo.EXPECT().FindCompanyByID(ctx, companyID).Return(company, nil)
	fx.companyRepo.EXPECT().UpdateCompany(ctx, mock.AnythingOfType("*entity.Company")).Return(nil)

	newName := "New Name"
	services := []string{"ceramic coating", "brightwork polishing"}
	lat, lng := 25.79, -80.29
	updated, err := fx.service.UpdateCompanyProfile(ctx, ownerID, companyID, &usecase.UpdateCompanyInput{
		Name:      &newName,
		Services:  &services,
		Latitude:  &lat,
		Longitude: &lng,
	})
	require.NoError(t, err)

	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "Miami", updated.City) // Untouched by a nil pointer.
	assert.Equal(t, services, updated.Services)
	require.NotNil(t, updated.Location)
	assert.InDelta(t, 25.79, updated.Location.Lat, 0.0001)
}

func TestDashboardService_UpdateCompanyProfile_NotOwner(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	companyID := uuid.New()

	fx.claimRepo.EXPECT().
		FindVerifiedClaim(ctx, ownerID, companyID).
		Return(nil, repository.ErrClaimNotFound)

	name := "Hijacked"
	_, err := fx.service.UpdateCompanyProfile(ctx, ownerID, companyID, &usecase.UpdateCompanyInput{Name: &name})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotListingOwner)
}

func TestDashboardService_AddCompanyLocation_LimitReached(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	companyID := uuid.New()

	expectVerifiedClaim(fx, ctx, ownerID, companyID)
	fx.locationRepo.EXPECT().CountLocationsByCompany(ctx, companyID).Return(3, nil)

	_, err := fx.service.AddCompanyLocation(ctx, ownerID, companyID, &usecase.AddLocationInput{
		Label:       "Satellite",
		FullAddress: "100 Hangar Rd",
		Latitude:    25.9,
		Longitude:   -80.27,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLocationLimitReached)
}

func TestDashboardService_AddCompanyLocation_Success(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	companyID := uuid.New()

	expectVerifiedClaim(fx, ctx, ownerID, companyID)
	fx.locationRepo.EXPECT().CountLocationsByCompany(ctx, companyID).Return(1, nil)
	fx.locationRepo.EXPECT().CreateLocation(ctx, mock.AnythingOfType("*entity.CompanyLocation")).Return(nil)

	location, err := fx.service.AddCompanyLocation(ctx, ownerID, companyID, &usecase.AddLocationInput{
		Label:       "Main hangar",
		FullAddress: "1 Runway Way",
		Latitude:    25.9,
		Longitude:   -80.27,
		IsPrimary:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, companyID, location.CompanyID)
	assert.True(t, location.IsPrimary)
}

func TestDashboardService_UpdateCompanyLocation_WrongCompany(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	companyID := uuid.New()
	locationID := uuid.New()

	expectVerifiedClaim(fx, ctx, ownerID, companyID)
	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, locationID).
		Return(&entity.CompanyLocation{ID: locationID, CompanyID: uuid.New()}, nil)

	label := "Renamed"
	_, err := fx.service.UpdateCompanyLocation(ctx, ownerID, companyID, locationID, &usecase.UpdateLocationInput{Label: &label})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestDashboardService_UploadMedia_TooLarge(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	companyID := uuid.New()

	expectVerifiedClaim(fx, ctx, ownerID, companyID)

	_, err := fx.service.UploadMedia(ctx, ownerID, companyID, &usecase.UploadMediaInput{
		Kind:        entity.MediaKindPhoto,
		ContentType: "image/jpeg",
		SizeBytes:   2 << 20, // Limit in the test config is 1 MiB.
		Body:        strings.NewReader("payload"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMediaTooLarge)
}

func TestDashboardService_UploadMedia_Success(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	companyID := uuid.New()

	expectVerifiedClaim(fx, ctx, ownerID, companyID)
	fx.mediaStorage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), "image/jpeg", mock.Anything).
		Return(nil)
	fx.mediaRepo.EXPECT().
		CreateMediaAsset(ctx, mock.AnythingOfType("*entity.MediaAsset")).
		Return(nil)

	asset, err := fx.service.UploadMedia(ctx, ownerID, companyID, &usecase.UploadMediaInput{
		Kind:        entity.MediaKindBeforeAfter,
		ContentType: "image/jpeg",
		SizeBytes:   1024,
		Caption:     "Leading edge, after",
		Body:        strings.NewReader("payload"),
	})
	require.NoError(t, err)

	assert.Equal(t, companyID, asset.CompanyID)
	assert.Contains(t, asset.BlobKey, companyID.String())
	assert.Contains(t, asset.BlobKey, asset.ID.String())
}

func TestDashboardService_DeleteMedia_Success(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	companyID := uuid.New()
	mediaID := uuid.New()
	asset := &entity.MediaAsset{ID: mediaID, CompanyID: companyID, BlobKey: "companies/a/media/b"}

	expectVerifiedClaim(fx, ctx, ownerID, companyID)
	fx.mediaRepo.EXPECT().FindMediaByID(ctx, mediaID).Return(asset, nil)
	fx.mediaRepo.EXPECT().DeleteMediaAsset(ctx, mediaID).Return(nil)
	fx.mediaStorage.EXPECT().Delete(ctx, asset.BlobKey).Return(nil)

	err := fx.service.DeleteMedia(ctx, ownerID, companyID, mediaID)
	require.NoError(t, err)
}

func TestDashboardService_DeleteMedia_WrongCompany(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	companyID := uuid.New()
	mediaID := uuid.New()

	expectVerifiedClaim(fx, ctx, ownerID, companyID)
	fx.mediaRepo.EXPECT().
		FindMediaByID(ctx, mediaID).
		Return(&entity.MediaAsset{ID: mediaID, CompanyID: uuid.New()}, nil)

	err := fx.service.DeleteMedia(ctx, ownerID, companyID, mediaID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMediaNotFound)
}
