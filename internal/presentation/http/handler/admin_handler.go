package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/laundry-admin/internal/application/service"
	"github.com/sangkips/laundry-admin/internal/presentation/http/dto/response"
)

// AdminHandler handles store maintenance requests
type AdminHandler struct {
	adminService *service.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// Reset handles wiping the store back to the demo dataset
func (h *AdminHandler) Reset(c *gin.Context) {
	if err := h.adminService.ResetData(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Data reset to demo dataset", nil)
}

// PurgeIdempotency handles removing expired idempotency records
func (h *AdminHandler) PurgeIdempotency(c *gin.Context) {
	removed, err := h.adminService.PurgeIdempotency(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expired idempotency records removed", gin.H{"removed": removed})
}

// Keys handles listing the keys held by the store
func (h *AdminHandler) Keys(c *gin.Context) {
	keys, err := h.adminService.ListKeys(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Store keys retrieved successfully", keys)
}
