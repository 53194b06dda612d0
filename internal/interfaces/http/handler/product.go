package handler

import (
	appCatalog "github.com/ecom/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles product CRUD endpoints
type ProductHandler struct {
	BaseHandler
	products *appCatalog.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(products *appCatalog.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// List handles GET /products
func (h *ProductHandler) List(c *gin.Context) {
	page, pageSize, ok := h.pagination(c)
	if !ok {
		return
	}

	result, err := h.products.List(c.Request.Context(), pageSize, page)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, result)
}

// Create handles POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var req appCatalog.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid product payload")
		return
	}

	product, err := h.products.Create(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, product)
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, product)
}

// Update handles PATCH /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req appCatalog.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid product payload")
		return
	}

	product, err := h.products.Update(c.Request.Context(), id, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, product)
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
