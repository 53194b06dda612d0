package handler

import (
	appCatalog "github.com/ecom/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// CategoryHandler handles category CRUD endpoints
type CategoryHandler struct {
	BaseHandler
	categories *appCatalog.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categories *appCatalog.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List handles GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
	page, pageSize, ok := h.pagination(c)
	if !ok {
		return
	}

	result, err := h.categories.List(c.Request.Context(), pageSize, page)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, result)
}

// Create handles POST /categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req appCatalog.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid category payload")
		return
	}

	category, err := h.categories.Create(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, category)
}

// Get handles GET /categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	category, err := h.categories.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, category)
}

// Update handles PATCH /categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req appCatalog.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid category payload")
		return
	}

	category, err := h.categories.Update(c.Request.Context(), id, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, category)
}

// Delete handles DELETE /categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
