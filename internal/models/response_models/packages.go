package response_models

type PackageResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"image_url,omitempty"`
	Price         float64  `json:"price,omitempty"`
	Duration      string   `json:"duration,omitempty"`
	Category      string   `json:"category"`
	Highlights    []string `json:"highlights,omitempty"`
	AverageRating float64  `json:"average_rating,omitempty"`
	ReviewCount   int      `json:"review_count,omitempty"`

	Destinations []DestinationResponse `json:"destinations,omitempty"`
}
