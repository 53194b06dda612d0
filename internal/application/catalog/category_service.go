// Package catalog wires the catalog entities (category, product) onto the
// generic CRUD service, adding each entity's uniqueness condition and input
// mapping on top.
package catalog

import (
	"context"

	"github.com/ecom/backend/internal/application/crud"
	"github.com/ecom/backend/internal/domain/catalog"
	"github.com/ecom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CreateCategoryRequest carries the validated inputs for category creation
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateCategoryRequest carries optional category fields; nil means unchanged
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CategoryService handles category CRUD with name uniqueness
type CategoryService struct {
	crud *crud.Service[catalog.Category]
}

// NewCategoryService creates a new category service
func NewCategoryService(repo shared.CrudRepository[catalog.Category]) *CategoryService {
	return &CategoryService{crud: crud.NewService(repo)}
}

// List returns one page of categories plus the total count
func (s *CategoryService) List(ctx context.Context, limit, page int) (*shared.Paginated[catalog.Category], error) {
	return s.crud.FindAll(ctx, limit, page)
}

// Create rejects a second category with an already stored name
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*catalog.Category, error) {
	category, err := catalog.NewCategory(req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	return s.crud.Create(ctx, category, map[string]any{"name": req.Name})
}

// Get looks a category up by id
func (s *CategoryService) Get(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	return s.crud.FindOne(ctx, id)
}

// Update applies the non-nil request fields onto the stored category
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (*catalog.Category, error) {
	patch := map[string]any{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	return s.crud.Update(ctx, patch, id)
}

// Delete removes a category by id
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.crud.Delete(ctx, id)
}
