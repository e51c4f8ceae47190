package response_models

type PackageStats struct {
	TotalPackages     int64            `json:"totalPackages"`
	TotalBookings     int64            `json:"totalBookings"`
	TotalReviews      int64            `json:"totalReviews"`
	AverageRating     float64          `json:"averageRating"`
	TotalRevenue      float64          `json:"totalRevenue"`
	CategoryBreakdown map[string]int64 `json:"categoryBreakdown"`
}
