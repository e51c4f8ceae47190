package controllers

import (
	"github.com/gin-gonic/gin"

	"konkanbliss/internal/services"
	"konkanbliss/pkg/utils"
)

type StatsController struct {
	statsService services.StatsServiceInterface
}

func NewStatsController(statsService services.StatsServiceInterface) *StatsController {
	return &StatsController{
		statsService: statsService,
	}
}

func (s *StatsController) GetStats(c *gin.Context) {
	stats, err := s.statsService.BuildStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Stats computed successfully")
}
