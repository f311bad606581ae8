package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/laundry-admin/internal/application/service"
	"github.com/sangkips/laundry-admin/internal/domain/enum"
	"github.com/sangkips/laundry-admin/internal/presentation/http/dto/request"
	"github.com/sangkips/laundry-admin/internal/presentation/http/dto/response"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func orderFilter(req *request.OrderFilterRequest) service.OrderFilter {
	return service.OrderFilter{
		Search:     req.Search,
		Status:     req.Status,
		Source:     req.Source,
		CustomerID: req.CustomerID,
	}
}

// List handles listing orders
func (h *OrderHandler) List(c *gin.Context) {
	var req request.OrderFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), orderFilter(&req), pageParams(req.Page, req.PerPage))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Counts handles the order summary cards
func (h *OrderHandler) Counts(c *gin.Context) {
	var req request.OrderFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	counts, err := h.orderService.CountOrders(c.Request.Context(), orderFilter(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order counts retrieved successfully", counts)
}

// Get handles getting an order by ID
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", response.NewOrderDetailResponse(order))
}

// UpdateStatus handles moving an order to a new status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated successfully", response.NewOrderDetailResponse(order))
}

// Statuses lists the status sequence with the allowed next steps
func (h *OrderHandler) Statuses(c *gin.Context) {
	options := make([]response.StatusOption, 0, len(enum.OrderStatuses()))
	for _, s := range enum.OrderStatuses() {
		next := []string{}
		for _, n := range s.Next() {
			next = append(next, n.String())
		}
		options = append(options, response.StatusOption{Status: s.String(), Rank: s.Rank(), Next: next})
	}

	response.OK(c, "Order statuses retrieved successfully", options)
}
