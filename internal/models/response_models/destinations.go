package response_models

type DestinationResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Slug              string   `json:"slug,omitempty"`
	Description       string   `json:"description"`
	Category          string   `json:"category"`
	Latitude          float64  `json:"latitude"`
	Longitude         float64  `json:"longitude"`
	ImageURL          string   `json:"image_url,omitempty"`
	PopularActivities []string `json:"popular_activities,omitempty"`
}
