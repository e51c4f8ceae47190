package request_models

type CreateBookingRequest struct {
	BookingDate     string  `json:"booking_date" binding:"required"`
	NumberOfPeople  int     `json:"number_of_people" binding:"required,min=1"`
	TotalAmount     float64 `json:"total_amount"`
	SpecialRequests string  `json:"special_requests"`
	ContactPhone    string  `json:"contact_phone"`
	ContactEmail    string  `json:"contact_email"`
}

type AddReviewRequest struct {
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	ReviewText string `json:"review_text"`
	TravelDate string `json:"travel_date"`
}
