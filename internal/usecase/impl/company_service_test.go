package impl

import (
	"context"
	"testing"
	"time"

	"detailers/internal/domain/entity"
	domainerrors "detailers/internal/domain/errors"
	"detailers/internal/domain/repository"
	mockRepo "detailers/internal/mocks/repository"
	mockSvc "detailers/internal/mocks/service"
	"detailers/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type companyServiceFixtures struct {
	service      usecase.CompanyUsecase
	companyRepo  *mockRepo.MockCompanyRepository
	locationRepo *mockRepo.MockLocationRepository
	mediaRepo    *mockRepo.MockMediaRepository
	mediaStorage *mockSvc.MockMediaStorage
}

func createTestCompanyService(t *testing.T) companyServiceFixtures {
	companyRepo := mockRepo.NewMockCompanyRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	mediaRepo := mockRepo.NewMockMediaRepository(t)
	mediaStorage := mockSvc.NewMockMediaStorage(t)

	service := NewCompanyService(CompanyServiceParams{
		CompanyRepo:  companyRepo,
		LocationRepo: locationRepo,
		MediaRepo:    mediaRepo,
		MediaStorage: mediaStorage,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return companyServiceFixtures{
		service:      service,
		companyRepo:  companyRepo,
		locationRepo: locationRepo,
		mediaRepo:    mediaRepo,
		mediaStorage: mediaStorage,
	}
}

func TestCompanyService_GetCompanyBySlug_Success(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	company := &entity.Company{ID: uuid.New(), Name: "Gulf Coast Detailing", Slug: "gulf-coast-detailing"}
	location := &entity.CompanyLocation{ID: uuid.New(), CompanyID: company.ID, Label: "Main hangar"}
	asset := &entity.MediaAsset{ID: uuid.New(), CompanyID: company.ID, BlobKey: "companies/x/media/y"}

	fx.companyRepo.EXPECT().FindCompanyBySlug(ctx, "gulf-coast-detailing").Return(company, nil)
	fx.locationRepo.EXPECT().FindLocationsByCompany(ctx, company.ID).Return([]*entity.CompanyLocation{location}, nil)
	fx.mediaRepo.EXPECT().FindMediaByCompany(ctx, company.ID).Return([]*entity.MediaAsset{asset}, nil)
	fx.mediaStorage.EXPECT().
		SignedURL(ctx, asset.BlobKey, 15*time.Minute).
		Return("https://cdn.example.com/signed", nil)

	profile, err := fx.service.GetCompanyBySlug(ctx, "gulf-coast-detailing")
	require.NoError(t, err)

	assert.Equal(t, company, profile.Company)
	require.Len(t, profile.Locations, 1)
	require.Len(t, profile.Media, 1)
	assert.Equal(t, "https://cdn.example.com/signed", profile.Media[0].URL)
}

func TestCompanyService_GetCompanyBySlug_NotFound(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	fx.companyRepo.EXPECT().
		FindCompanyBySlug(ctx, "missing").
		Return(nil, repository.ErrCompanyNotFound)

	_, err := fx.service.GetCompanyBySlug(ctx, "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCompanyNotFound)
}

func TestCompanyService_GetCompanyByID_SigningFailureDegrades(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	company := &entity.Company{ID: uuid.New(), Name: "Jetstream Shine"}
	asset := &entity.MediaAsset{ID: uuid.New(), CompanyID: company.ID, BlobKey: "companies/x/media/z"}

	fx.companyRepo.EXPECT().FindCompanyByID(ctx, company.ID).Return(company, nil)
	fx.locationRepo.EXPECT().FindLocationsByCompany(ctx, company.ID).Return(nil, nil)
	fx.mediaRepo.EXPECT().FindMediaByCompany(ctx, company.ID).Return([]*entity.MediaAsset{asset}, nil)
	fx.mediaStorage.EXPECT().
		SignedURL(ctx, asset.BlobKey, 15*time.Minute).
		Return("", errors.New("bucket unreachable"))

	profile, err := fx.service.GetCompanyByID(ctx, company.ID)
	require.NoError(t, err)

	// The asset survives as metadata-only.
	require.Len(t, profile.Media, 1)
	assert.Empty(t, profile.Media[0].URL)
	assert.Equal(t, asset, profile.Media[0].Asset)
}

func TestCompanyService_ListCompanies_FiltersAndCapsLimit(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	expected := []*entity.Company{{ID: uuid.New(), Name: "Lone Star Aero Wash", State: "TX"}}

	// A limit beyond the index cap is pulled back to 200.
	fx.companyRepo.EXPECT().
		ListCompanies(ctx, repository.CompanyFilter{State: "TX", City: "Austin", Limit: 200}).
		Return(expected, nil)

	companies, err := fx.service.ListCompanies(ctx, &usecase.CompanyListInput{
		State: "TX",
		City:  "Austin",
		Limit: 5000,
	})
	require.NoError(t, err)
	assert.Equal(t, expected, companies)
}
