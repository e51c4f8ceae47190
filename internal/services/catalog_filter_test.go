package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"konkanbliss/internal/models/request_models"
	"konkanbliss/internal/models/response_models"
	"konkanbliss/internal/services"
)

func browseRecords() []response_models.PackageResponse {
	return []response_models.PackageResponse{
		{ID: "a", Title: "Tarkarli Beach", Description: "Clear waters", Category: "beach", Price: 2000, Highlights: []string{"Scuba Diving"}},
		{ID: "b", Title: "Sindhudurg Fort", Description: "Historic sea fort", Category: "heritage", Price: 500, Highlights: []string{"Photography"}},
		{ID: "c", Title: "Amboli Waterfalls", Description: "Lush greenery", Category: "nature", Price: 1000, Highlights: []string{"Trekking"}},
	}
}

func TestFilterPackagesEmptyCriteriaKeepsEverything(t *testing.T) {
	records := browseRecords()
	got := services.FilterPackages(records, request_models.PackageFilter{})
	assert.Equal(t, records, got)
}

func TestFilterPackagesCategoryAllIsNoRestriction(t *testing.T) {
	got := services.FilterPackages(browseRecords(), request_models.PackageFilter{Category: "All"})
	assert.Len(t, got, 3)
}

func TestFilterPackagesCategoryIsCaseInsensitive(t *testing.T) {
	got := services.FilterPackages(browseRecords(), request_models.PackageFilter{Category: "BEACH"})
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestFilterPackagesSearchReachesHighlights(t *testing.T) {
	got := services.FilterPackages(browseRecords(), request_models.PackageFilter{SearchText: "scuba"})
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	got = services.FilterPackages(browseRecords(), request_models.PackageFilter{SearchText: "historic"})
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestFilterPackagesPriceBoundsAreInclusive(t *testing.T) {
	got := services.FilterPackages(browseRecords(), request_models.PackageFilter{PriceMin: 500, PriceMax: 1000})
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestFilterPackagesZeroBoundLeavesSideOpen(t *testing.T) {
	got := services.FilterPackages(browseRecords(), request_models.PackageFilter{PriceMin: 1000})
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestFilterPackagesPreservesInputOrder(t *testing.T) {
	got := services.FilterPackages(browseRecords(), request_models.PackageFilter{SearchText: "a"})
	ids := make([]string, 0, len(got))
	for _, rec := range got {
		ids = append(ids, rec.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}
