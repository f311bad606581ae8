package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/laundry-admin/internal/application/service"
	"github.com/sangkips/laundry-admin/internal/presentation/http/dto/request"
	"github.com/sangkips/laundry-admin/internal/presentation/http/dto/response"
)

// BillHandler handles monthly bill HTTP requests
type BillHandler struct {
	billService *service.BillService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billService *service.BillService) *BillHandler {
	return &BillHandler{billService: billService}
}

// List handles listing bills
func (h *BillHandler) List(c *gin.Context) {
	var req request.BillFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	filter := service.BillFilter{
		CustomerID: req.CustomerID,
		Status:     req.Status,
		Month:      req.Month,
		Search:     req.Search,
	}
	result, err := h.billService.ListBills(c.Request.Context(), filter, pageParams(req.Page, req.PerPage))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}

// Get handles getting a bill by ID
func (h *BillHandler) Get(c *gin.Context) {
	bill, err := h.billService.GetBill(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// NextID previews the ID the next bill would get
func (h *BillHandler) NextID(c *gin.Context) {
	id, err := h.billService.NextBillID(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Next bill ID generated", gin.H{"billId": id})
}

// Create handles the manual bill form
func (h *BillHandler) Create(c *gin.Context) {
	var req request.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	items := make([]service.ManualBillItemInput, len(req.Items))
	for i, it := range req.Items {
		items[i] = service.ManualBillItemInput{
			ItemName:    it.ItemName,
			Category:    it.Category,
			SubCategory: it.SubCategory,
			Price:       it.Price,
			Quantity:    it.Quantity,
		}
	}

	bill, err := h.billService.CreateManualBill(c.Request.Context(), &service.CreateManualBillInput{
		CustomerName: req.CustomerName,
		Mobile:       req.Mobile,
		CompanyName:  req.CompanyName,
		Email:        req.Email,
		Address:      req.Address,
		Month:        req.Month,
		Items:        items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill created successfully", bill)
}

// Generate handles building a bill from delivered orders
func (h *BillHandler) Generate(c *gin.Context) {
	var req request.GenerateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	bill, err := h.billService.GenerateMonthlyBill(c.Request.Context(), req.CustomerID, req.Month)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Monthly bill generated successfully", bill)
}

// UpdateStatus handles marking a bill Pending, Paid or Overdue
func (h *BillHandler) UpdateStatus(c *gin.Context) {
	var req request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	bill, err := h.billService.UpdateBillStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill status updated successfully", bill)
}
