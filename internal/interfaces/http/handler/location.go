package handler

import (
	appPartner "github.com/ecom/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
)

// LocationHandler handles delivery location CRUD endpoints
type LocationHandler struct {
	BaseHandler
	locations *appPartner.LocationService
}

// NewLocationHandler creates a new LocationHandler
func NewLocationHandler(locations *appPartner.LocationService) *LocationHandler {
	return &LocationHandler{locations: locations}
}

// List handles GET /locations
func (h *LocationHandler) List(c *gin.Context) {
	page, pageSize, ok := h.pagination(c)
	if !ok {
		return
	}

	result, err := h.locations.List(c.Request.Context(), pageSize, page)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, result)
}

// Create handles POST /locations
func (h *LocationHandler) Create(c *gin.Context) {
	var req appPartner.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid location payload")
		return
	}

	location, err := h.locations.Create(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, location)
}

// Get handles GET /locations/:id
func (h *LocationHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	location, err := h.locations.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, location)
}

// Update handles PATCH /locations/:id
func (h *LocationHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req appPartner.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid location payload")
		return
	}

	location, err := h.locations.Update(c.Request.Context(), id, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, location)
}

// Delete handles DELETE /locations/:id
func (h *LocationHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.locations.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
