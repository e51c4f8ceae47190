package response_models

type ItineraryActivity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Cost        int    `json:"cost"`
}

type ItineraryRestaurant struct {
	Name    string `json:"name"`
	Cuisine string `json:"cuisine"`
	Contact string `json:"contact"`
}

type ItineraryDay struct {
	Title       string                `json:"title"`
	Activities  []ItineraryActivity   `json:"activities"`
	Restaurants []ItineraryRestaurant `json:"restaurants"`
	Tips        string                `json:"tips"`
}

type GeneratedItinerary struct {
	Days               []ItineraryDay `json:"days"`
	TotalEstimatedCost int            `json:"totalEstimatedCost"`
	BestTimeToVisit    string         `json:"bestTimeToVisit"`
	Summary            string         `json:"summary"`
}
