package db_models

import "github.com/lib/pq"

type Package struct {
	BaseModel
	Title         string
	Description   string
	ImageURL      string
	Price         float64
	Duration      string
	Category      string
	Highlights    pq.StringArray `gorm:"type:text[]"`
	AverageRating float64
	ReviewCount   int

	Destinations []Destination    `gorm:"many2many:package_destinations"`
	Reviews      []PackageReview  `gorm:"foreignKey:PackageID"`
	Bookings     []PackageBooking `gorm:"foreignKey:PackageID"`
}
