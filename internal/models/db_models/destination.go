package db_models

import "github.com/lib/pq"

type Destination struct {
	BaseModel
	Name              string `gorm:"unique"`
	Slug              string `gorm:"unique"`
	Description       string
	Category          string
	Latitude          float64
	Longitude         float64
	ImageURL          string
	PopularActivities pq.StringArray `gorm:"type:text[]"`

	Packages []*Package `gorm:"many2many:package_destinations"`
}
