package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"strconv"

	"konkanbliss/internal/services"
	"konkanbliss/pkg/utils"
)

type MapsController struct {
	mapsService services.MapsServiceInterface
}

func NewMapsController(mapsService services.MapsServiceInterface) *MapsController {
	return &MapsController{
		mapsService: mapsService,
	}
}

func (m *MapsController) ListPlaces(c *gin.Context) {
	utils.RespondSuccess(c, m.mapsService.ListPlaces(), "Places fetched successfully")
}

// GetDirections requires both coordinates, present and numeric.
func (m *MapsController) GetDirections(c *gin.Context) {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")
	if latStr == "" || lngStr == "" {
		utils.RespondError(c, http.StatusBadRequest, "Both lat and lng are required")
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid latitude")
		return
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid longitude")
		return
	}

	directions, err := m.mapsService.Directions(lat, lng)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, directions, "Directions URL generated")
}
