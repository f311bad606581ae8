package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/laundry-admin/internal/application/service"
	"github.com/sangkips/laundry-admin/internal/presentation/http/dto/request"
	"github.com/sangkips/laundry-admin/internal/presentation/http/dto/response"
)

// CategoryHandler handles category and price HTTP requests
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List handles getting the category tree with prices
func (h *CategoryHandler) List(c *gin.Context) {
	overview, err := h.categoryService.GetCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Categories retrieved successfully", overview)
}

// Search handles filtering the sub-categories of one main category
func (h *CategoryHandler) Search(c *gin.Context) {
	subs, err := h.categoryService.SearchSubCategories(c.Request.Context(), c.Param("category"), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sub-categories retrieved successfully", subs)
}

// AddSubCategory handles adding a sub-category with its price
func (h *CategoryHandler) AddSubCategory(c *gin.Context) {
	var req request.SubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	sub, err := h.categoryService.AddSubCategory(c.Request.Context(), &service.SubCategoryInput{
		Category: c.Param("category"),
		Name:     req.Name,
		Price:    req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sub-category added successfully", sub)
}

// EditSubCategory handles renaming and repricing a sub-category
func (h *CategoryHandler) EditSubCategory(c *gin.Context) {
	var req request.SubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	sub, err := h.categoryService.EditSubCategory(c.Request.Context(), &service.EditSubCategoryInput{
		Category: c.Param("category"),
		OldName:  c.Param("name"),
		Name:     req.Name,
		Price:    req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sub-category updated successfully", sub)
}

// DeleteSubCategory handles removing a sub-category
func (h *CategoryHandler) DeleteSubCategory(c *gin.Context) {
	if err := h.categoryService.DeleteSubCategory(c.Request.Context(), c.Param("category"), c.Param("name")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sub-category deleted successfully", nil)
}

// GetPrice handles looking up a sub-category price
func (h *CategoryHandler) GetPrice(c *gin.Context) {
	price, err := h.categoryService.GetPrice(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Price retrieved successfully", price)
}
