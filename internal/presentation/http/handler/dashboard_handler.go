package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/laundry-admin/internal/application/service"
	"github.com/sangkips/laundry-admin/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats handles getting the live dashboard summary
func (h *DashboardHandler) GetStats(c *gin.Context) {
	response.OK(c, "Dashboard stats retrieved successfully", h.dashboardService.GetDashboard(c.Request.Context()))
}

// GetStoredStats handles getting the stored counters object
func (h *DashboardHandler) GetStoredStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStoredStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stored stats retrieved successfully", stats)
}
