package services

import (
	"strings"

	"konkanbliss/internal/models/request_models"
	"konkanbliss/internal/models/response_models"
)

// FilterPackages applies the browse criteria in memory. It mirrors the SQL
// predicates in the package repository and backs the built-in catalog path.
// Input order is preserved; callers pre-sort.
//
// Category is an exact tag match, with ""/"all" meaning no restriction.
// Search text matches case-insensitively against title, description and any
// highlight; a record matches if any one field contains the query. Price
// bounds are inclusive, a zero bound leaves that side open.
func FilterPackages(records []response_models.PackageResponse, criteria request_models.PackageFilter) []response_models.PackageResponse {
	out := make([]response_models.PackageResponse, 0, len(records))
	for _, rec := range records {
		if !matchesCategory(rec.Category, criteria.Category) {
			continue
		}
		if !matchesSearch(rec, criteria.SearchText) {
			continue
		}
		if criteria.PriceMin > 0 && rec.Price < criteria.PriceMin {
			continue
		}
		if criteria.PriceMax > 0 && rec.Price > criteria.PriceMax {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func matchesCategory(category, wanted string) bool {
	if wanted == "" || strings.EqualFold(wanted, "all") {
		return true
	}
	return strings.EqualFold(category, wanted)
}

func destinationMatchesSearch(dest response_models.DestinationResponse, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(dest.Name), q) ||
		strings.Contains(strings.ToLower(dest.Description), q)
}

func matchesSearch(rec response_models.PackageResponse, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(rec.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(rec.Description), q) {
		return true
	}
	for _, h := range rec.Highlights {
		if strings.Contains(strings.ToLower(h), q) {
			return true
		}
	}
	return false
}
