package request_models

type GenerateItineraryRequest struct {
	Days            int      `json:"days" binding:"required"`
	GroupType       string   `json:"groupType" binding:"required"`
	ExploreType     []string `json:"exploreType" binding:"required"`
	BudgetRange     string   `json:"budgetRange" binding:"required"`
	SpecialRequests string   `json:"specialRequests"`
}
