package handler

import (
	appImporting "github.com/ecom/backend/internal/application/importing"
	"github.com/gin-gonic/gin"
)

// ImportHandler handles inventory import endpoints
type ImportHandler struct {
	BaseHandler
	imports *appImporting.Service
}

// NewImportHandler creates a new ImportHandler
func NewImportHandler(imports *appImporting.Service) *ImportHandler {
	return &ImportHandler{imports: imports}
}

// Create handles POST /imports
func (h *ImportHandler) Create(c *gin.Context) {
	var req appImporting.CreateImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid import payload")
		return
	}

	im, err := h.imports.Create(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, im)
}

// Get handles GET /imports/:id
func (h *ImportHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	im, err := h.imports.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, im)
}

// Update handles PUT /imports/:id
func (h *ImportHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req appImporting.UpdateImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid import payload")
		return
	}

	im, err := h.imports.Update(c.Request.Context(), id, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, im)
}
