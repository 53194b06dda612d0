package catalog

import (
	"context"

	"github.com/ecom/backend/internal/application/crud"
	"github.com/ecom/backend/internal/domain/catalog"
	"github.com/ecom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest carries the validated inputs for product creation
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	CategoryID  uuid.UUID       `json:"category_id" binding:"required"`
	ImageURL    string          `json:"image_url"`
}

// UpdateProductRequest carries optional product fields; nil means unchanged
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity"`
	CategoryID  *uuid.UUID       `json:"category_id"`
	ImageURL    *string          `json:"image_url"`
}

// ProductService handles product CRUD with name uniqueness
type ProductService struct {
	crud *crud.Service[catalog.Product]
}

// NewProductService creates a new product service
func NewProductService(repo shared.CrudRepository[catalog.Product]) *ProductService {
	return &ProductService{crud: crud.NewService(repo)}
}

// List returns one page of products plus the total count
func (s *ProductService) List(ctx context.Context, limit, page int) (*shared.Paginated[catalog.Product], error) {
	return s.crud.FindAll(ctx, limit, page)
}

// Create rejects a second product with an already stored name
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*catalog.Product, error) {
	product, err := catalog.NewProduct(req.Name, req.Description, req.Price, req.Quantity, req.CategoryID)
	if err != nil {
		return nil, err
	}
	product.ImageURL = req.ImageURL
	return s.crud.Create(ctx, product, map[string]any{"name": req.Name})
}

// Get looks a product up by id
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	return s.crud.FindOne(ctx, id)
}

// Update applies the non-nil request fields onto the stored product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*catalog.Product, error) {
	patch := map[string]any{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.Price != nil {
		patch["price"] = *req.Price
	}
	if req.Quantity != nil {
		patch["quantity"] = *req.Quantity
	}
	if req.CategoryID != nil {
		patch["category_id"] = *req.CategoryID
	}
	if req.ImageURL != nil {
		patch["image_url"] = *req.ImageURL
	}
	return s.crud.Update(ctx, patch, id)
}

// Delete removes a product by id
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.crud.Delete(ctx, id)
}
