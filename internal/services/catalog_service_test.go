package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"konkanbliss/internal/models/db_models"
	"konkanbliss/internal/models/request_models"
	"konkanbliss/internal/repositories"
	"konkanbliss/internal/services"
	"konkanbliss/pkg/utils"
)

type packageRepoMock struct {
	createFn  func(ctx context.Context, pkg *db_models.Package) (uuid.UUID, error)
	getByIDFn func(ctx context.Context, id string) (*db_models.Package, error)
	listFn    func(ctx context.Context, page, pageSize int) ([]db_models.Package, error)
	searchFn  func(ctx context.Context, filter request_models.PackageFilter, page, pageSize int) ([]db_models.Package, error)
}

var _ repositories.PackageRepository = (*packageRepoMock)(nil)

func (m *packageRepoMock) Create(ctx context.Context, pkg *db_models.Package) (uuid.UUID, error) {
	return m.createFn(ctx, pkg)
}

func (m *packageRepoMock) GetByIDWithDestinations(ctx context.Context, id string) (*db_models.Package, error) {
	return m.getByIDFn(ctx, id)
}

func (m *packageRepoMock) List(ctx context.Context, page, pageSize int) ([]db_models.Package, error) {
	return m.listFn(ctx, page, pageSize)
}

func (m *packageRepoMock) Search(ctx context.Context, filter request_models.PackageFilter, page, pageSize int) ([]db_models.Package, error) {
	return m.searchFn(ctx, filter, page, pageSize)
}

type destinationRepoMock struct {
	getByIDFn func(ctx context.Context, id string) (*db_models.Destination, error)
	searchFn  func(ctx context.Context, filter request_models.DestinationFilter) ([]db_models.Destination, error)
}

var _ repositories.DestinationRepository = (*destinationRepoMock)(nil)

func (m *destinationRepoMock) GetByID(ctx context.Context, id string) (*db_models.Destination, error) {
	return m.getByIDFn(ctx, id)
}

func (m *destinationRepoMock) Search(ctx context.Context, filter request_models.DestinationFilter) ([]db_models.Destination, error) {
	return m.searchFn(ctx, filter)
}

func TestSearchPackagesServesBuiltInCatalogOnRepoError(t *testing.T) {
	repo := &packageRepoMock{
		listFn: func(ctx context.Context, page, pageSize int) ([]db_models.Package, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := services.NewCatalogService(repo, &destinationRepoMock{})

	got, err := svc.SearchPackages(context.Background(), request_models.PackageFilter{}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, services.FallbackPackages(), got)
}

// An unfiltered browse takes the plain List path; filters go through Search.
func TestSearchPackagesUnfilteredUsesList(t *testing.T) {
	listCalls, searchCalls := 0, 0
	repo := &packageRepoMock{
		listFn: func(ctx context.Context, page, pageSize int) ([]db_models.Package, error) {
			listCalls++
			return nil, nil
		},
		searchFn: func(ctx context.Context, filter request_models.PackageFilter, page, pageSize int) ([]db_models.Package, error) {
			searchCalls++
			return nil, nil
		},
	}
	svc := services.NewCatalogService(repo, &destinationRepoMock{})

	_, err := svc.SearchPackages(context.Background(), request_models.PackageFilter{}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, listCalls)
	assert.Equal(t, 0, searchCalls)

	_, err = svc.SearchPackages(context.Background(), request_models.PackageFilter{Category: "beach"}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, listCalls)
	assert.Equal(t, 1, searchCalls)
}

func TestCreatePackagePersists(t *testing.T) {
	var created *db_models.Package
	repo := &packageRepoMock{
		createFn: func(ctx context.Context, pkg *db_models.Package) (uuid.UUID, error) {
			created = pkg
			created.ID = uuid.New()
			return created.ID, nil
		},
	}
	svc := services.NewCatalogService(repo, &destinationRepoMock{})

	got, err := svc.CreatePackage(context.Background(), request_models.CreatePackageRequest{
		Title:      "Sawantwadi Craft Trail",
		Price:      1200,
		Category:   "heritage",
		Highlights: []string{"Wooden Toys", "Palace"},
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created.ID.String(), got.ID)
	assert.Equal(t, "Sawantwadi Craft Trail", got.Title)
	assert.Equal(t, []string{"Wooden Toys", "Palace"}, got.Highlights)
}

func TestCreatePackageRepoFailure(t *testing.T) {
	repo := &packageRepoMock{
		createFn: func(ctx context.Context, pkg *db_models.Package) (uuid.UUID, error) {
			return uuid.Nil, errors.New("connection refused")
		},
	}
	svc := services.NewCatalogService(repo, &destinationRepoMock{})

	_, err := svc.CreatePackage(context.Background(), request_models.CreatePackageRequest{
		Title:    "Sawantwadi Craft Trail",
		Price:    1200,
		Category: "heritage",
	})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestSearchPackagesFiltersBuiltInCatalogOnRepoError(t *testing.T) {
	repo := &packageRepoMock{
		searchFn: func(ctx context.Context, filter request_models.PackageFilter, page, pageSize int) ([]db_models.Package, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := services.NewCatalogService(repo, &destinationRepoMock{})

	got, err := svc.SearchPackages(context.Background(), request_models.PackageFilter{Category: "heritage"}, 1, 20)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Sindhudurg Fort", got[0].Title)
}

func TestSearchPackagesEmptyUnfilteredSeedFallsBack(t *testing.T) {
	repo := &packageRepoMock{
		listFn: func(ctx context.Context, page, pageSize int) ([]db_models.Package, error) {
			return nil, nil
		},
	}
	svc := services.NewCatalogService(repo, &destinationRepoMock{})

	got, err := svc.SearchPackages(context.Background(), request_models.PackageFilter{}, 1, 20)
	require.NoError(t, err)
	assert.Len(t, got, 6)
}

func TestSearchPackagesFilteredMissStaysEmpty(t *testing.T) {
	repo := &packageRepoMock{
		searchFn: func(ctx context.Context, filter request_models.PackageFilter, page, pageSize int) ([]db_models.Package, error) {
			return nil, nil
		},
	}
	svc := services.NewCatalogService(repo, &destinationRepoMock{})

	got, err := svc.SearchPackages(context.Background(), request_models.PackageFilter{SearchText: "houseboat"}, 1, 20)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchPackagesMapsLiveRows(t *testing.T) {
	id := uuid.New()
	repo := &packageRepoMock{
		listFn: func(ctx context.Context, page, pageSize int) ([]db_models.Package, error) {
			return []db_models.Package{{
				BaseModel:   db_models.BaseModel{ID: id},
				Title:       "Monsoon Special",
				Description: "Waterfalls at their peak",
				Price:       3000,
				Category:    "nature",
				Highlights:  pq.StringArray{"Amboli", "Rappelling"},
			}}, nil
		},
	}
	svc := services.NewCatalogService(repo, &destinationRepoMock{})

	got, err := svc.SearchPackages(context.Background(), request_models.PackageFilter{}, 1, 20)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, id.String(), got[0].ID)
	assert.Equal(t, "Monsoon Special", got[0].Title)
	assert.Equal(t, []string{"Amboli", "Rappelling"}, got[0].Highlights)
}

func TestGetPackageByIDNotFound(t *testing.T) {
	repo := &packageRepoMock{
		getByIDFn: func(ctx context.Context, id string) (*db_models.Package, error) {
			return nil, nil
		},
	}
	svc := services.NewCatalogService(repo, &destinationRepoMock{})

	_, err := svc.GetPackageByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrPackageNotFound)
}

func TestGetPackageByIDRepoErrorIsNotMasked(t *testing.T) {
	repo := &packageRepoMock{
		getByIDFn: func(ctx context.Context, id string) (*db_models.Package, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := services.NewCatalogService(repo, &destinationRepoMock{})

	_, err := svc.GetPackageByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestSearchDestinationsServesBuiltInOnRepoError(t *testing.T) {
	destRepo := &destinationRepoMock{
		searchFn: func(ctx context.Context, filter request_models.DestinationFilter) ([]db_models.Destination, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := services.NewCatalogService(&packageRepoMock{}, destRepo)

	got, err := svc.SearchDestinations(context.Background(), request_models.DestinationFilter{Category: "nature"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Amboli Waterfalls", got[0].Name)
}

func TestGetDestinationByIDNotFound(t *testing.T) {
	destRepo := &destinationRepoMock{
		getByIDFn: func(ctx context.Context, id string) (*db_models.Destination, error) {
			return nil, nil
		},
	}
	svc := services.NewCatalogService(&packageRepoMock{}, destRepo)

	_, err := svc.GetDestinationByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrDestinationNotFound)
}
