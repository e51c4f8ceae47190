package db_models

import "github.com/google/uuid"

type PackageReview struct {
	BaseModel
	PackageID  uuid.UUID
	AccountID  uuid.UUID
	Rating     int
	ReviewText string
	TravelDate string
}
