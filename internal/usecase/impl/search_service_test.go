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

func createTestSearchService(t *testing.T) (usecase.SearchUsecase, *mockRepo.MockCompanyRepository) {
	companyRepo := mockRepo.NewMockCompanyRepository(t)
	service := NewSearchService(SearchServiceParams{
		CompanyRepo: companyRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return service, companyRepo
}

func searchTestCompanies() []*entity.Company {
	score80 := 80
	score40 := 40

	return []*entity.Company{
		{
			ID:         uuid.New(),
			Name:       "Opa-locka Jet Detailing",
			City:       "Opa-locka",
			State:      "FL",
			TrustScore: &score80,
			Location:   &entity.GeoPoint{Lat: 25.907, Lng: -80.2784}, // At OPF.
		},
		{
			ID:         uuid.New(),
			Name:       "Orlando Aircraft Shine",
			City:       "Orlando",
			State:      "FL",
			TrustScore: &score40,
			Location:   &entity.GeoPoint{Lat: 28.4312, Lng: -81.3081}, // At MCO, ~200 mi north.
		},
		{
			ID:   uuid.New(),
			Name: "Unlocated Wash Co",
		},
	}
}

func TestSearchService_Search_AirportAnchor(t *testing.T) {
	service, companyRepo := createTestSearchService(t)

	ctx := context.Background()
	companies := searchTestCompanies()

	companyRepo.EXPECT().
		ListCompanies(ctx, repository.CompanyFilter{State: "FL", Limit: 1000}).
		Return(companies, nil)

	output, err := service.Search(ctx, &usecase.SearchInput{
		AirportCode: "opf",
		State:       "FL",
		SortBy:      "distance",
	})
	require.NoError(t, err)

	// Default 50 mile radius keeps only the Opa-locka shop; the unlocated
	// company never survives an anchored filter.
	require.Len(t, output.Companies, 1)
	assert.Equal(t, "Opa-locka Jet Detailing", output.Companies[0].Name)
	assert.Equal(t, "OPF - Miami-Opa Locka Executive", output.AnchorLabel)
	require.NotNil(t, output.Companies[0].Distance)
	assert.InDelta(t, 0, *output.Companies[0].Distance, 1)
}

func TestSearchService_Search_UnknownAirport(t *testing.T) {
	service, _ := createTestSearchService(t)

	_, err := service.Search(context.Background(), &usecase.SearchInput{AirportCode: "ZZZ"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownAirport)
}

func TestSearchService_Search_RawCoordinates(t *testing.T) {
	service, companyRepo := createTestSearchService(t)

	ctx := context.Background()
	companyRepo.EXPECT().
		ListCompanies(ctx, repository.CompanyFilter{Limit: 1000}).
		Return(searchTestCompanies(), nil)

	lat, lng := 25.79, -80.28
	radius := 600.0 // Clamped down to the 500 mile ceiling.
	output, err := service.Search(ctx, &usecase.SearchInput{
		Latitude:    &lat,
		Longitude:   &lng,
		RadiusMiles: &radius,
	})
	require.NoError(t, err)

	assert.Equal(t, "your location", output.AnchorLabel)
	// Both located companies fit in 500 miles; the unlocated one is dropped.
	assert.Equal(t, 2, output.TotalMatched)
}

func TestSearchService_Search_InvalidCoordinates(t *testing.T) {
	service, _ := createTestSearchService(t)

	lat, lng := 95.0, 0.0
	_, err := service.Search(context.Background(), &usecase.SearchInput{
		Latitude:  &lat,
		Longitude: &lng,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}

func TestSearchService_Search_AirportCodeWinsOverCoordinates(t *testing.T) {
	service, companyRepo := createTestSearchService(t)

	ctx := context.Background()
	companyRepo.EXPECT().
		ListCompanies(ctx, repository.CompanyFilter{Limit: 1000}).
		Return(nil, nil)

	lat, lng := 47.45, -122.31 // Seattle coordinates, ignored.
	output, err := service.Search(ctx, &usecase.SearchInput{
		AirportCode: "MIA",
		Latitude:    &lat,
		Longitude:   &lng,
	})
	require.NoError(t, err)
	assert.Equal(t, "MIA - Miami International", output.AnchorLabel)
	require.NotNil(t, output.Anchor)
	assert.InDelta(t, 25.7959, output.Anchor.Lat, 0.001)
}

func TestSearchService_Search_NoAnchorTextQuery(t *testing.T) {
	service, companyRepo := createTestSearchService(t)

	ctx := context.Background()
	companyRepo.EXPECT().
		ListCompanies(ctx, repository.CompanyFilter{Limit: 1000}).
		Return(searchTestCompanies(), nil)

	output, err := service.Search(ctx, &usecase.SearchInput{Query: "wash"})
	require.NoError(t, err)

	require.Len(t, output.Companies, 1)
	assert.Equal(t, "Unlocated Wash Co", output.Companies[0].Name)
	assert.Nil(t, output.Anchor)
}

func TestSearchService_Search_PageSizeCapped(t *testing.T) {
	service, companyRepo := createTestSearchService(t)

	ctx := context.Background()
	companies := make([]*entity.Company, 0, 150)
	for i := 0; i < 150; i++ {
		companies = append(companies, &entity.Company{ID: uuid.New(), Name: "Shop"})
	}

	companyRepo.EXPECT().
		ListCompanies(ctx, repository.CompanyFilter{Limit: 1000}).
		Return(companies, nil)

	output, err := service.Search(ctx, &usecase.SearchInput{PageSize: 5000})
	require.NoError(t, err)

	assert.Len(t, output.Companies, 100)
	assert.Equal(t, 150, output.TotalMatched)
	assert.Equal(t, 2, output.TotalPages)
}

func TestSearchService_Nearby_SortsClosestFirst(t *testing.T) {
	service, companyRepo := createTestSearchService(t)

	ctx := context.Background()
	companyRepo.EXPECT().
		ListCompanies(ctx, repository.CompanyFilter{Limit: 1000}).
		Return(searchTestCompanies(), nil)

	radius := 300.0
	output, err := service.Nearby(ctx, &usecase.NearbyInput{
		Latitude:    25.79,
		Longitude:   -80.28,
		RadiusMiles: &radius,
	})
	require.NoError(t, err)

	// Both located companies are inside 300 miles, closest first; the
	// unlocated one can never appear on the map.
	require.Len(t, output.Companies, 2)
	assert.Equal(t, "Opa-locka Jet Detailing", output.Companies[0].Name)
	assert.Equal(t, "Orlando Aircraft Shine", output.Companies[1].Name)
	require.NotNil(t, output.Companies[0].Distance)
	require.NotNil(t, output.Companies[1].Distance)
	assert.Less(t, *output.Companies[0].Distance, *output.Companies[1].Distance)
	assert.InDelta(t, 25.79, output.Anchor.Lat, 0.001)
}

func TestSearchService_Nearby_DefaultRadiusApplied(t *testing.T) {
	service, companyRepo := createTestSearchService(t)

	ctx := context.Background()
	companyRepo.EXPECT().
		ListCompanies(ctx, repository.CompanyFilter{Limit: 1000}).
		Return(searchTestCompanies(), nil)

	// No radius requested: the 50 mile default excludes Orlando.
	output, err := service.Nearby(ctx, &usecase.NearbyInput{
		Latitude:  25.79,
		Longitude: -80.28,
	})
	require.NoError(t, err)

	require.Len(t, output.Companies, 1)
	assert.Equal(t, "Opa-locka Jet Detailing", output.Companies[0].Name)
}

func TestSearchService_Nearby_InvalidCoordinates(t *testing.T) {
	service, _ := createTestSearchService(t)

	_, err := service.Nearby(context.Background(), &usecase.NearbyInput{
		Latitude:  25.79,
		Longitude: -200,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}

func TestSearchService_ListAirports(t *testing.T) {
	service, _ := createTestSearchService(t)

	anchors := service.ListAirports(context.Background())
	assert.NotEmpty(t, anchors)
}
