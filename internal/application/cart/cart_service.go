// Package cart wires cart items onto the generic CRUD service with
// (user, product) uniqueness so a product appears at most once per cart.
package cart

import (
	"context"

	"github.com/ecom/backend/internal/application/crud"
	"github.com/ecom/backend/internal/domain/cart"
	"github.com/ecom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CreateItemRequest carries the validated inputs for adding a cart item
type CreateItemRequest struct {
	UserID    uuid.UUID `json:"user_id" binding:"required"`
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// UpdateItemRequest carries the optional quantity change; nil means unchanged
type UpdateItemRequest struct {
	Quantity *int `json:"quantity"`
}

// Service handles cart item CRUD
type Service struct {
	crud *crud.Service[cart.Item]
}

// NewService creates a new cart service
func NewService(repo shared.CrudRepository[cart.Item]) *Service {
	return &Service{crud: crud.NewService(repo)}
}

// List returns one page of cart items plus the total count
func (s *Service) List(ctx context.Context, limit, page int) (*shared.Paginated[cart.Item], error) {
	return s.crud.FindAll(ctx, limit, page)
}

// Create rejects a second entry for the same user and product
func (s *Service) Create(ctx context.Context, req CreateItemRequest) (*cart.Item, error) {
	item, err := cart.NewItem(req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		return nil, err
	}
	return s.crud.Create(ctx, item, map[string]any{
		"user_id":    req.UserID,
		"product_id": req.ProductID,
	})
}

// Get looks a cart item up by id
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*cart.Item, error) {
	return s.crud.FindOne(ctx, id)
}

// Update applies a quantity change onto the stored item
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateItemRequest) (*cart.Item, error) {
	patch := map[string]any{}
	if req.Quantity != nil {
		if *req.Quantity <= 0 {
			return nil, shared.NewDomainError(shared.CodeInvalidInput, "Quantity must be positive")
		}
		patch["quantity"] = *req.Quantity
	}
	return s.crud.Update(ctx, patch, id)
}

// Delete removes a cart item by id
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.crud.Delete(ctx, id)
}
