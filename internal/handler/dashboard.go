package handler

import (
	"net/http"

	"github.com/AndreiWRoiko/InvetarioOp/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Stats godoc
// @Summary Estatísticas do dashboard
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardStats
// @Router /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.svc.ComputarStats(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, stats)
}
