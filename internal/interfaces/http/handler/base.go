// Package handler implements the HTTP handlers. Handlers bind and validate
// requests, call the application services and translate their results into
// the response envelope; authorization is out of scope here.
package handler

import (
	"net/http"

	"github.com/ecom/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a success response with pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends the error mapped onto its HTTP status
func (h *BaseHandler) Error(c *gin.Context, err error) {
	status, body := dto.FromError(err)
	c.JSON(status, body)
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeBadRequest, message))
}

// pathID parses the :id path parameter, replying 400 on a malformed value.
// The boolean reports whether the handler should continue.
func (h *BaseHandler) pathID(c *gin.Context) (uuid.UUID, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "invalid id")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// pagination binds page/page_size query parameters, replying 400 on
// out-of-range values.
func (h *BaseHandler) pagination(c *gin.Context) (page, pageSize int, ok bool) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "invalid pagination parameters")
		return 0, 0, false
	}
	return req.Page, req.PageSize, true
}
