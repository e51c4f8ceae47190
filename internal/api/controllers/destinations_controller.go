package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"konkanbliss/internal/models/request_models"
	"konkanbliss/internal/services"
	"konkanbliss/pkg/utils"
)

type DestinationsController struct {
	catalogService services.CatalogServiceInterface
}

func NewDestinationsController(catalogService services.CatalogServiceInterface) *DestinationsController {
	return &DestinationsController{
		catalogService: catalogService,
	}
}

func (d *DestinationsController) SearchDestinations(c *gin.Context) {
	var filter request_models.DestinationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid filter parameters")
		return
	}

	dests, err := d.catalogService.SearchDestinations(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dests, "Destinations fetched successfully")
}

func (d *DestinationsController) GetDestinationByID(c *gin.Context) {
	destinationID := c.Param("id")
	if destinationID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}

	dest, err := d.catalogService.GetDestinationByID(c.Request.Context(), destinationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dest, "Destination fetched successfully")
}
