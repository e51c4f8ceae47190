package response_models

type MappedPlace struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Type      string  `json:"type"`
}

type DirectionsResponse struct {
	URL string `json:"url"`
}
