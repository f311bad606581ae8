package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/laundry-admin/internal/application/service"
	"github.com/sangkips/laundry-admin/internal/presentation/http/dto/response"
)

// DeliveryPersonHandler handles delivery staff HTTP requests
type DeliveryPersonHandler struct {
	deliveryService *service.DeliveryPersonService
}

// NewDeliveryPersonHandler creates a new delivery person handler
func NewDeliveryPersonHandler(deliveryService *service.DeliveryPersonService) *DeliveryPersonHandler {
	return &DeliveryPersonHandler{deliveryService: deliveryService}
}

// List handles listing delivery persons
func (h *DeliveryPersonHandler) List(c *gin.Context) {
	persons, err := h.deliveryService.ListDeliveryPersons(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Delivery persons retrieved successfully", persons)
}

// Get handles getting a delivery person by ID
func (h *DeliveryPersonHandler) Get(c *gin.Context) {
	person, err := h.deliveryService.GetDeliveryPerson(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Delivery person retrieved successfully", person)
}

// Totals handles the delivery summary cards
func (h *DeliveryPersonHandler) Totals(c *gin.Context) {
	totals, err := h.deliveryService.Totals(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Delivery totals retrieved successfully", totals)
}
