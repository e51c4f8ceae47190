package response_models

type LoginResponse struct {
	Token string `json:"token"`
}

type BookingResponse struct {
	ID              string  `json:"id"`
	PackageID       string  `json:"package_id"`
	PackageTitle    string  `json:"package_title"`
	BookingDate     string  `json:"booking_date"`
	NumberOfPeople  int     `json:"number_of_people"`
	TotalAmount     float64 `json:"total_amount"`
	SpecialRequests string  `json:"special_requests,omitempty"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
}
