package db_models

import "github.com/google/uuid"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type PackageBooking struct {
	BaseModel
	PackageID       uuid.UUID
	AccountID       uuid.UUID
	BookingDate     string
	NumberOfPeople  int
	TotalAmount     float64
	SpecialRequests string
	ContactPhone    string
	ContactEmail    string
	Status          BookingStatus `gorm:"default:pending"`

	Package Package
}
