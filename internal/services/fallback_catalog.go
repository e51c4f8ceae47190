package services

import (
	"konkanbliss/internal/models/response_models"
)

// Built-in browse catalog served whenever the live package source is
// unreachable or empty. The browse surface must never render blank, so
// these literals mirror the seeded marketing content.
var fallbackPackages = []response_models.PackageResponse{
	{
		ID:            "builtin-tarkarli-beach",
		Title:         "Tarkarli Beach",
		Description:   "Crystal clear waters perfect for water sports and relaxation",
		ImageURL:      "https://images.unsplash.com/photo-1500673922987-e212871fec22?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Price:         2000,
		Duration:      "2 Days, 1 Night",
		Category:      "beach",
		Highlights:    []string{"Water Sports", "Scuba Diving", "Clear Waters", "Beach Activities"},
		AverageRating: 4.8,
	},
	{
		ID:            "builtin-sindhudurg-fort",
		Title:         "Sindhudurg Fort",
		Description:   "Historic sea fort built by Chhatrapati Shivaji Maharaj",
		ImageURL:      "https://images.unsplash.com/photo-1466442929976-97f336a657be?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Price:         500,
		Duration:      "1 Day",
		Category:      "heritage",
		Highlights:    []string{"Historical", "Architecture", "Sea Views", "Photography"},
		AverageRating: 4.7,
	},
	{
		ID:            "builtin-amboli-waterfalls",
		Title:         "Amboli Waterfalls",
		Description:   "Breathtaking waterfalls surrounded by lush greenery",
		ImageURL:      "https://images.unsplash.com/photo-1482938289607-e9573fc25ebb?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Price:         1000,
		Duration:      "1 Day",
		Category:      "nature",
		Highlights:    []string{"Waterfalls", "Trekking", "Nature Photography", "Monsoon Beauty"},
		AverageRating: 4.9,
	},
	{
		ID:            "builtin-malvan-beach",
		Title:         "Malvan Beach",
		Description:   "Famous for scuba diving and authentic Malvani cuisine",
		ImageURL:      "https://images.unsplash.com/photo-1500673922987-e212871fec22?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Price:         2500,
		Duration:      "2 Days, 1 Night",
		Category:      "beach",
		Highlights:    []string{"Scuba Diving", "Seafood", "Local Culture", "Water Sports"},
		AverageRating: 4.6,
	},
	{
		ID:            "builtin-vengurla-beach",
		Title:         "Vengurla Beach",
		Description:   "Pristine beach with golden sand and coconut groves",
		ImageURL:      "https://images.unsplash.com/photo-1500673922987-e212871fec22?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Price:         1500,
		Duration:      "2 Days, 1 Night",
		Category:      "beach",
		Highlights:    []string{"Pristine Beach", "Coconut Groves", "Sunset Views", "Peaceful"},
		AverageRating: 4.5,
	},
	{
		ID:            "builtin-devbagh-beach",
		Title:         "Devbagh Beach",
		Description:   "Secluded beach perfect for peaceful getaways",
		ImageURL:      "https://images.unsplash.com/photo-1500673922987-e212871fec22?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Price:         1000,
		Duration:      "2 Days, 1 Night",
		Category:      "beach",
		Highlights:    []string{"Secluded", "Peace", "Natural Beauty", "Turtle Watching"},
		AverageRating: 4.4,
	},
}

var fallbackDestinations = []response_models.DestinationResponse{
	{ID: "builtin-dest-tarkarli", Name: "Tarkarli Beach", Category: "beach", Latitude: 16.0167, Longitude: 73.4667,
		Description:       "Crystal clear waters perfect for water sports and relaxation",
		PopularActivities: []string{"water sports", "scuba diving", "beach relaxation"}},
	{ID: "builtin-dest-sindhudurg", Name: "Sindhudurg Fort", Category: "heritage", Latitude: 16.0333, Longitude: 73.5,
		Description:       "Historic sea fort built by Chhatrapati Shivaji Maharaj",
		PopularActivities: []string{"fort exploration", "history tour", "photography"}},
	{ID: "builtin-dest-amboli", Name: "Amboli Waterfalls", Category: "nature", Latitude: 15.95, Longitude: 74.0,
		Description:       "Breathtaking waterfalls surrounded by lush greenery",
		PopularActivities: []string{"trekking", "waterfall viewing", "nature photography"}},
	{ID: "builtin-dest-malvan", Name: "Malvan Beach", Category: "beach", Latitude: 16.0594, Longitude: 73.4707,
		Description:       "Famous for scuba diving and authentic Malvani cuisine",
		PopularActivities: []string{"Malvani cuisine", "seafood", "local markets"}},
	{ID: "builtin-dest-vengurla", Name: "Vengurla Beach", Category: "beach", Latitude: 15.8667, Longitude: 73.6333,
		Description:       "Pristine beach with golden sand and coconut groves",
		PopularActivities: []string{"sunset viewing", "coconut groves", "peaceful walks"}},
	{ID: "builtin-dest-devbagh", Name: "Devbagh Beach", Category: "beach", Latitude: 16.0, Longitude: 73.45,
		Description:       "Secluded beach perfect for peaceful getaways",
		PopularActivities: []string{"secluded beach", "turtle watching", "peaceful getaway"}},
}

// FallbackPackages returns a copy so callers can filter freely.
func FallbackPackages() []response_models.PackageResponse {
	out := make([]response_models.PackageResponse, len(fallbackPackages))
	copy(out, fallbackPackages)
	return out
}

func FallbackDestinations() []response_models.DestinationResponse {
	out := make([]response_models.DestinationResponse, len(fallbackDestinations))
	copy(out, fallbackDestinations)
	return out
}
