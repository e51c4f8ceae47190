package response_models

// SavedItinerary and Experience are the two dashboard collections. They are
// owned entirely by the local store, never reconciled against postgres.
type SavedItinerary struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Duration     string   `json:"duration"`
	Destinations []string `json:"destinations"`
	Budget       string   `json:"budget"`
	GroupType    string   `json:"groupType"`
	CreatedAt    string   `json:"createdAt"`
	LastModified string   `json:"lastModified"`
	Status       string   `json:"status"`
}

type Experience struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Date        string   `json:"date"`
	Rating      int      `json:"rating"`
	Photos      []string `json:"photos"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}
