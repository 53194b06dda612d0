// Package partner wires delivery locations onto the generic CRUD service.
// Locations carry no uniqueness condition; a user may store several.
package partner

import (
	"context"

	"github.com/ecom/backend/internal/application/crud"
	"github.com/ecom/backend/internal/domain/partner"
	"github.com/ecom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CreateLocationRequest carries the validated inputs for location creation
type CreateLocationRequest struct {
	UserID   uuid.UUID `json:"user_id" binding:"required"`
	Receiver string    `json:"receiver"`
	Phone    string    `json:"phone"`
	Address  string    `json:"address" binding:"required"`
	City     string    `json:"city"`
}

// UpdateLocationRequest carries optional location fields; nil means unchanged
type UpdateLocationRequest struct {
	Receiver  *string `json:"receiver"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	IsDefault *bool   `json:"is_default"`
}

// LocationService handles delivery location CRUD
type LocationService struct {
	crud *crud.Service[partner.Location]
}

// NewLocationService creates a new location service
func NewLocationService(repo shared.CrudRepository[partner.Location]) *LocationService {
	return &LocationService{crud: crud.NewService(repo)}
}

// List returns one page of locations plus the total count
func (s *LocationService) List(ctx context.Context, limit, page int) (*shared.Paginated[partner.Location], error) {
	return s.crud.FindAll(ctx, limit, page)
}

// Create stores a new delivery location
func (s *LocationService) Create(ctx context.Context, req CreateLocationRequest) (*partner.Location, error) {
	location, err := partner.NewLocation(req.UserID, req.Receiver, req.Phone, req.Address, req.City)
	if err != nil {
		return nil, err
	}
	return s.crud.Create(ctx, location, nil)
}

// Get looks a location up by id
func (s *LocationService) Get(ctx context.Context, id uuid.UUID) (*partner.Location, error) {
	return s.crud.FindOne(ctx, id)
}

// Update applies the non-nil request fields onto the stored location
func (s *LocationService) Update(ctx context.Context, id uuid.UUID, req UpdateLocationRequest) (*partner.Location, error) {
	patch := map[string]any{}
	if req.Receiver != nil {
		patch["receiver"] = *req.Receiver
	}
	if req.Phone != nil {
		patch["phone"] = *req.Phone
	}
	if req.Address != nil {
		patch["address"] = *req.Address
	}
	if req.City != nil {
		patch["city"] = *req.City
	}
	if req.IsDefault != nil {
		patch["is_default"] = *req.IsDefault
	}
	return s.crud.Update(ctx, patch, id)
}

// Delete removes a location by id
func (s *LocationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.crud.Delete(ctx, id)
}
