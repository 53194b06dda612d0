// Package identity wires user accounts onto the generic CRUD service with
// email uniqueness.
package identity

import (
	"context"

	"github.com/ecom/backend/internal/application/crud"
	"github.com/ecom/backend/internal/domain/identity"
	"github.com/ecom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CreateUserRequest carries the validated inputs for account creation
type CreateUserRequest struct {
	Email    string        `json:"email" binding:"required,email"`
	Password string        `json:"password" binding:"required"`
	Name     string        `json:"name" binding:"required"`
	Phone    string        `json:"phone"`
	Role     identity.Role `json:"role" binding:"omitempty,user_role"`
}

// UpdateUserRequest carries optional account fields; nil means unchanged
type UpdateUserRequest struct {
	Name  *string        `json:"name"`
	Phone *string        `json:"phone"`
	Role  *identity.Role `json:"role" binding:"omitempty,user_role"`
}

// UserService handles account CRUD with email uniqueness
type UserService struct {
	crud *crud.Service[identity.User]
}

// NewUserService creates a new user service
func NewUserService(repo shared.CrudRepository[identity.User]) *UserService {
	return &UserService{crud: crud.NewService(repo)}
}

// List returns one page of accounts plus the total count
func (s *UserService) List(ctx context.Context, limit, page int) (*shared.Paginated[identity.User], error) {
	return s.crud.FindAll(ctx, limit, page)
}

// Create rejects a second account with an already registered email
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*identity.User, error) {
	role := req.Role
	if role == "" {
		role = identity.RoleCustomer
	}
	user, err := identity.NewUser(req.Email, req.Password, req.Name, role)
	if err != nil {
		return nil, err
	}
	user.Phone = req.Phone
	return s.crud.Create(ctx, user, map[string]any{"email": req.Email})
}

// Get looks an account up by id
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	return s.crud.FindOne(ctx, id)
}

// Update applies the non-nil request fields onto the stored account
func (s *UserService) Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*identity.User, error) {
	patch := map[string]any{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.Phone != nil {
		patch["phone"] = *req.Phone
	}
	if req.Role != nil {
		if !req.Role.IsValid() {
			return nil, shared.NewDomainError(shared.CodeInvalidInput, "Unknown role")
		}
		patch["role"] = *req.Role
	}
	return s.crud.Update(ctx, patch, id)
}

// Delete removes an account by id
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.crud.Delete(ctx, id)
}
