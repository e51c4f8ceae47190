package request_models

// PackageFilter carries the browse-page query parameters. Zero values
// mean "no restriction" on that axis.
type PackageFilter struct {
	Category   string  `form:"category"`
	SearchText string  `form:"search"`
	PriceMin   float64 `form:"minPrice"`
	PriceMax   float64 `form:"maxPrice"`
}

type DestinationFilter struct {
	Category   string `form:"category"`
	SearchText string `form:"search"`
}

type CreatePackageRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Duration    string   `json:"duration"`
	Category    string   `json:"category" binding:"required"`
	Highlights  []string `json:"highlights"`
}
