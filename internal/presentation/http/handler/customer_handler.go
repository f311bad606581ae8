package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/laundry-admin/internal/application/service"
	"github.com/sangkips/laundry-admin/internal/presentation/http/dto/request"
	"github.com/sangkips/laundry-admin/internal/presentation/http/dto/response"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

func customerFilter(req *request.CustomerFilterRequest) service.CustomerFilter {
	return service.CustomerFilter{Search: req.Search, MonthlyBilling: req.MonthlyBilling}
}

// List handles listing customers
func (h *CustomerHandler) List(c *gin.Context) {
	var req request.CustomerFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.customerService.ListCustomers(c.Request.Context(), customerFilter(&req), pageParams(req.Page, req.PerPage))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// Counts handles the customer summary cards
func (h *CustomerHandler) Counts(c *gin.Context) {
	var req request.CustomerFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	counts, err := h.customerService.CountCustomers(c.Request.Context(), customerFilter(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer counts retrieved successfully", counts)
}

// Get handles getting a customer by ID
func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.customerService.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}

// Orders handles listing the orders of a customer
func (h *CustomerHandler) Orders(c *gin.Context) {
	orders, err := h.customerService.GetCustomerOrders(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer orders retrieved successfully", orders)
}

// Bills handles listing the monthly bills of a customer
func (h *CustomerHandler) Bills(c *gin.Context) {
	bills, err := h.customerService.GetCustomerBills(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer bills retrieved successfully", bills)
}

// Update handles editing a customer's contact details
func (h *CustomerHandler) Update(c *gin.Context) {
	var req request.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), &service.UpdateCustomerInput{
		ID:      c.Param("id"),
		Name:    req.Name,
		Mobile:  req.Mobile,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated successfully", customer)
}

// ToggleMonthlyBilling handles flipping the monthly billing flag
func (h *CustomerHandler) ToggleMonthlyBilling(c *gin.Context) {
	customer, err := h.customerService.ToggleMonthlyBilling(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Monthly billing "+string(customer.MonthlyBilling), customer)
}

// SetMonthlyBilling handles setting the monthly billing flag explicitly
func (h *CustomerHandler) SetMonthlyBilling(c *gin.Context) {
	var req request.SetMonthlyBillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customer, err := h.customerService.SetMonthlyBilling(c.Request.Context(), c.Param("id"), req.MonthlyBilling)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Monthly billing "+string(customer.MonthlyBilling), customer)
}
