package request_models

type SaveItineraryRequest struct {
	Title        string   `json:"title" binding:"required"`
	Duration     string   `json:"duration"`
	Destinations []string `json:"destinations"`
	Budget       string   `json:"budget"`
	GroupType    string   `json:"groupType"`
	Status       string   `json:"status"`
}

type AddExperienceRequest struct {
	Title       string   `json:"title" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	Rating      int      `json:"rating"`
	Photos      []string `json:"photos"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}
