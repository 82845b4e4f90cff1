package handlers

import (
	"carrent/internal/services"
	"carrent/internal/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	statsService services.StatsService
}

func NewAdminHandler(statsService services.StatsService) *AdminHandler {
	return &AdminHandler{
		statsService: statsService,
	}
}

// GetStats returns the admin dashboard counters
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GetDashboardStats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Stats")
		return
	}

	utils.SuccessResponse(c, "Stats retrieved", stats)
}
