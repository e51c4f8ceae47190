package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"konkanbliss/internal/models/request_models"
	"konkanbliss/internal/services"
	"konkanbliss/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

func accountID(c *gin.Context) string {
	if v, ok := c.Get("account_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func (d *DashboardController) ListItineraries(c *gin.Context) {
	items, err := d.dashboardService.ListItineraries(accountID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, items, "Saved itineraries fetched successfully")
}

func (d *DashboardController) AddItinerary(c *gin.Context) {
	var req request_models.SaveItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Title is required")
		return
	}

	item, err := d.dashboardService.AddItinerary(accountID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, item, "Itinerary saved successfully")
}

func (d *DashboardController) RemoveItinerary(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	if err := d.dashboardService.RemoveItinerary(accountID(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Itinerary removed")
}

func (d *DashboardController) ListExperiences(c *gin.Context) {
	items, err := d.dashboardService.ListExperiences(accountID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, items, "Experiences fetched successfully")
}

func (d *DashboardController) AddExperience(c *gin.Context) {
	var req request_models.AddExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Please fill in the title and location")
		return
	}

	item, err := d.dashboardService.AddExperience(accountID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, item, "Experience added successfully")
}

func (d *DashboardController) RemoveExperience(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Experience ID is required")
		return
	}

	if err := d.dashboardService.RemoveExperience(accountID(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Experience removed")
}
