package handler

import (
	appCart "github.com/ecom/backend/internal/application/cart"
	"github.com/gin-gonic/gin"
)

// CartHandler handles cart item CRUD endpoints
type CartHandler struct {
	BaseHandler
	carts *appCart.Service
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(carts *appCart.Service) *CartHandler {
	return &CartHandler{carts: carts}
}

// List handles GET /carts
func (h *CartHandler) List(c *gin.Context) {
	page, pageSize, ok := h.pagination(c)
	if !ok {
		return
	}

	result, err := h.carts.List(c.Request.Context(), pageSize, page)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, result)
}

// Create handles POST /carts
func (h *CartHandler) Create(c *gin.Context) {
	var req appCart.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid cart payload")
		return
	}

	item, err := h.carts.Create(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, item)
}

// Get handles GET /carts/:id
func (h *CartHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	item, err := h.carts.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, item)
}

// Update handles PATCH /carts/:id
func (h *CartHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req appCart.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid cart payload")
		return
	}

	item, err := h.carts.Update(c.Request.Context(), id, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, item)
}

// Delete handles DELETE /carts/:id
func (h *CartHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.carts.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
