package impl

import (
	"context"
	"testing"

	"detailers/internal/domain/entity"
	domainerrors "detailers/internal/domain/errors"
	"detailers/internal/domain/repository"
	mockRepo "detailers/internal/mocks/repository"
	"detailers/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wizardServiceFixtures struct {
	service     usecase.WizardUsecase
	companyRepo *mockRepo.MockCompanyRepository
}

func createTestWizardService(t *testing.T) wizardServiceFixtures {
	companyRepo := mockRepo.NewMockCompanyRepository(t)

	svc := NewWizardService(WizardServiceParams{
		CompanyRepo: companyRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return wizardServiceFixtures{service: svc, companyRepo: companyRepo}
}

func wizardTestCompanies() []*entity.Company {
	trust := func(score int) *int { return &score }

	return []*entity.Company{
		{
			ID:         uuid.New(),
			Name:       "Full Match Detailing",
			Services:   []string{"Exterior Wash", "Brightwork Polish"},
			Tier:       entity.TierBasic,
			TrustScore: trust(50),
			Location:   &entity.GeoPoint{Lat: 25.907, Lng: -80.278},
		},
		{
			ID:         uuid.New(),
			Name:       "Partial Match Detailing",
			Services:   []string{"Exterior Wash"},
			Tier:       entity.TierBasic,
			TrustScore: trust(50),
			Location:   &entity.GeoPoint{Lat: 25.907, Lng: -80.278},
		},
		{
			ID:         uuid.New(),
			Name:       "No Match Detailing",
			Services:   []string{"Carpet Shampoo"},
			Tier:       entity.TierBasic,
			TrustScore: trust(50),
		},
	}
}

func TestWizardService_MatchDetailers_RanksByServiceCoverage(t *testing.T) {
	fx := createTestWizardService(t)

	ctx := context.Background()
	fx.companyRepo.EXPECT().
		ListCompanies(ctx, repository.CompanyFilter{Limit: 1000}).
		Return(wizardTestCompanies(), nil)

	output, err := fx.service.MatchDetailers(ctx, &usecase.WizardInput{
		ServicesWanted: []string{"exterior wash", "brightwork polish"},
	})
	require.NoError(t, err)
	require.Len(t, output.Matches, 3)

	assert.Equal(t, "Full Match Detailing", output.Matches[0].Name)
	assert.Equal(t, "Partial Match Detailing", output.Matches[1].Name)
	assert.Equal(t, "No Match Detailing", output.Matches[2].Name)
	assert.Greater(t, output.Matches[0].Score, output.Matches[1].Score)

	// No seeker location was shared, so no distances are computed.
	assert.Nil(t, output.Matches[0].Distance)
}

func TestWizardService_MatchDetailers_DistanceBreaksTies(t *testing.T) {
	fx := createTestWizardService(t)

	lat := 25.907
	lng := -80.278

	companies := wizardTestCompanies()
	// Same services as the leader, but a continent away.
	companies = append(companies, &entity.Company{
		ID:         uuid.New(),
		Name:       "Far Away Detailing",
		Services:   []string{"Exterior Wash", "Brightwork Polish"},
		Tier:       entity.TierBasic,
		TrustScore: companies[0].TrustScore,
		Location:   &entity.GeoPoint{Lat: 47.449, Lng: -122.309},
	})

	ctx := context.Background()
	fx.companyRepo.EXPECT().
		ListCompanies(ctx, repository.CompanyFilter{Limit: 1000}).
		Return(companies, nil)

	output, err := fx.service.MatchDetailers(ctx, &usecase.WizardInput{
		ServicesWanted: []string{"Exterior Wash", "Brightwork Polish"},
		Latitude:       &lat,
		Longitude:      &lng,
	})
	require.NoError(t, err)
	require.Len(t, output.Matches, 4)

	assert.Equal(t, "Full Match Detailing", output.Matches[0].Name)
	require.NotNil(t, output.Matches[0].Distance)
	assert.InDelta(t, 0, *output.Matches[0].Distance, 1)
}

func TestWizardService_MatchDetailers_LimitApplied(t *testing.T) {
	fx := createTestWizardService(t)

	ctx := context.Background()
	fx.companyRepo.EXPECT().
		ListCompanies(ctx, repository.CompanyFilter{Limit: 1000}).
		Return(wizardTestCompanies(), nil)

	output, err := fx.service.MatchDetailers(ctx, &usecase.WizardInput{
		ServicesWanted: []string{"Exterior Wash"},
		Limit:          1,
	})
	require.NoError(t, err)
	assert.Len(t, output.Matches, 1)
}

func TestWizardService_MatchDetailers_InvalidCoordinates(t *testing.T) {
	fx := createTestWizardService(t)

	lat := 95.0
	lng := -80.278

	_, err := fx.service.MatchDetailers(context.Background(), &usecase.WizardInput{
		Latitude:  &lat,
		Longitude: &lng,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}
