package services

import (
	"context"
	"log"

	"github.com/lib/pq"

	"konkanbliss/internal/models/db_models"
	"konkanbliss/internal/models/request_models"
	"konkanbliss/internal/models/response_models"
	"konkanbliss/internal/repositories"
	"konkanbliss/pkg/utils"
)

type CatalogServiceInterface interface {
	CreatePackage(ctx context.Context, req request_models.CreatePackageRequest) (response_models.PackageResponse, error)
	SearchPackages(ctx context.Context, filter request_models.PackageFilter, page, pageSize int) ([]response_models.PackageResponse, error)
	GetPackageByID(ctx context.Context, id string) (response_models.PackageResponse, error)
	SearchDestinations(ctx context.Context, filter request_models.DestinationFilter) ([]response_models.DestinationResponse, error)
	GetDestinationByID(ctx context.Context, id string) (response_models.DestinationResponse, error)
}

type CatalogService struct {
	packageRepo     repositories.PackageRepository
	destinationRepo repositories.DestinationRepository
}

func NewCatalogService(
	packageRepo repositories.PackageRepository,
	destinationRepo repositories.DestinationRepository,
) CatalogServiceInterface {
	return &CatalogService{
		packageRepo:     packageRepo,
		destinationRepo: destinationRepo,
	}
}

// CreatePackage is the back-office insert behind the admin surface.
func (s *CatalogService) CreatePackage(ctx context.Context, req request_models.CreatePackageRequest) (response_models.PackageResponse, error) {
	pkg := &db_models.Package{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		Duration:    req.Duration,
		Category:    req.Category,
		Highlights:  pq.StringArray(req.Highlights),
	}

	if _, err := s.packageRepo.Create(ctx, pkg); err != nil {
		log.Printf("Error creating package: %v", err)
		return response_models.PackageResponse{}, utils.ErrDatabaseError
	}
	return buildPackageResponse(pkg), nil
}

// SearchPackages serves the browse page. An unreachable or empty upstream
// never surfaces as an error here: the built-in catalog is substituted and
// the same criteria applied in memory. A filtered query that legitimately
// matches nothing still returns the empty set.
func (s *CatalogService) SearchPackages(ctx context.Context, filter request_models.PackageFilter, page, pageSize int) ([]response_models.PackageResponse, error) {
	unfiltered := filter == (request_models.PackageFilter{})

	var pkgs []db_models.Package
	var err error
	if unfiltered {
		pkgs, err = s.packageRepo.List(ctx, page, pageSize)
	} else {
		pkgs, err = s.packageRepo.Search(ctx, filter, page, pageSize)
	}
	if err != nil {
		log.Printf("Error searching packages, serving built-in catalog: %v", err)
		return FilterPackages(FallbackPackages(), filter), nil
	}

	if len(pkgs) == 0 {
		if unfiltered {
			return FallbackPackages(), nil
		}
		return []response_models.PackageResponse{}, nil
	}

	out := make([]response_models.PackageResponse, 0, len(pkgs))
	for _, pkg := range pkgs {
		out = append(out, buildPackageResponse(&pkg))
	}
	return out, nil
}

func (s *CatalogService) GetPackageByID(ctx context.Context, id string) (response_models.PackageResponse, error) {
	pkg, err := s.packageRepo.GetByIDWithDestinations(ctx, id)
	if err != nil {
		return response_models.PackageResponse{}, utils.ErrDatabaseError
	}
	if pkg == nil {
		return response_models.PackageResponse{}, utils.ErrPackageNotFound
	}
	return buildPackageResponse(pkg), nil
}

func (s *CatalogService) SearchDestinations(ctx context.Context, filter request_models.DestinationFilter) ([]response_models.DestinationResponse, error) {
	dests, err := s.destinationRepo.Search(ctx, filter)
	if err != nil {
		log.Printf("Error searching destinations, serving built-in catalog: %v", err)
		return filterFallbackDestinations(filter), nil
	}

	if len(dests) == 0 {
		if filter == (request_models.DestinationFilter{}) {
			return FallbackDestinations(), nil
		}
		return []response_models.DestinationResponse{}, nil
	}

	out := make([]response_models.DestinationResponse, 0, len(dests))
	for _, dest := range dests {
		out = append(out, buildDestinationResponse(&dest))
	}
	return out, nil
}

func (s *CatalogService) GetDestinationByID(ctx context.Context, id string) (response_models.DestinationResponse, error) {
	dest, err := s.destinationRepo.GetByID(ctx, id)
	if err != nil {
		return response_models.DestinationResponse{}, utils.ErrDatabaseError
	}
	if dest == nil {
		return response_models.DestinationResponse{}, utils.ErrDestinationNotFound
	}
	return buildDestinationResponse(dest), nil
}

func buildPackageResponse(pkg *db_models.Package) response_models.PackageResponse {
	resp := response_models.PackageResponse{
		ID:            pkg.ID.String(),
		Title:         pkg.Title,
		Description:   pkg.Description,
		ImageURL:      pkg.ImageURL,
		Price:         pkg.Price,
		Duration:      pkg.Duration,
		Category:      pkg.Category,
		Highlights:    pkg.Highlights,
		AverageRating: pkg.AverageRating,
		ReviewCount:   pkg.ReviewCount,
	}
	for _, dest := range pkg.Destinations {
		resp.Destinations = append(resp.Destinations, buildDestinationResponse(&dest))
	}
	return resp
}

func buildDestinationResponse(dest *db_models.Destination) response_models.DestinationResponse {
	return response_models.DestinationResponse{
		ID:                dest.ID.String(),
		Name:              dest.Name,
		Slug:              dest.Slug,
		Description:       dest.Description,
		Category:          dest.Category,
		Latitude:          dest.Latitude,
		Longitude:         dest.Longitude,
		ImageURL:          dest.ImageURL,
		PopularActivities: dest.PopularActivities,
	}
}

func filterFallbackDestinations(filter request_models.DestinationFilter) []response_models.DestinationResponse {
	out := make([]response_models.DestinationResponse, 0)
	for _, dest := range FallbackDestinations() {
		if !matchesCategory(dest.Category, filter.Category) {
			continue
		}
		if !destinationMatchesSearch(dest, filter.SearchText) {
			continue
		}
		out = append(out, dest)
	}
	return out
}
