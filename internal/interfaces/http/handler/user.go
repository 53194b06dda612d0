package handler

import (
	appIdentity "github.com/ecom/backend/internal/application/identity"
	"github.com/gin-gonic/gin"
)

// UserHandler handles account CRUD endpoints
type UserHandler struct {
	BaseHandler
	users *appIdentity.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users *appIdentity.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /users
func (h *UserHandler) List(c *gin.Context) {
	page, pageSize, ok := h.pagination(c)
	if !ok {
		return
	}

	result, err := h.users.List(c.Request.Context(), pageSize, page)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, result)
}

// Create handles POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req appIdentity.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid user payload")
		return
	}

	user, err := h.users.Create(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, user)
}

// Get handles GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, user)
}

// Update handles PATCH /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req appIdentity.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid user payload")
		return
	}

	user, err := h.users.Update(c.Request.Context(), id, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, user)
}

// Delete handles DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
