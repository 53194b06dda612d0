package order

import (
	"context"

	"github.com/google/uuid"
)

// ManagementFilter is the filter bundle for the administrative order listing.
// An exact Status is mutually exclusive with the included/excluded sets; when
// it is present the sets are ignored entirely.
type ManagementFilter struct {
	Status           *Status
	IncludedStatuses []Status
	ExcludedStatuses []Status
	PaymentStatus    *PaymentStatus
}

// Normalized returns the filter with the precedence rule applied: an exact
// status clears both status sets, and an included set takes priority over an
// excluded one.
func (f ManagementFilter) Normalized() ManagementFilter {
	if f.Status != nil {
		f.IncludedStatuses = nil
		f.ExcludedStatuses = nil
		return f
	}
	if len(f.IncludedStatuses) > 0 {
		f.ExcludedStatuses = nil
	}
	return f
}

// ProductStock is a read-only stock-on-hand figure for a product referenced
// by the selected orders.
type ProductStock struct {
	ProductID uuid.UUID `json:"product_id"`
	InStock   int       `json:"in_stock"`
}

// Repository is the storage port for orders
type Repository interface {
	// FindByID loads an order header together with its lines
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	// CreateWithLines persists the header and all its lines as one atomic unit
	CreateWithLines(ctx context.Context, o *Order) error
	// Update persists the header's mutable fields; lines are left untouched
	Update(ctx context.Context, o *Order) error
	// FindManaged returns one page of orders matching the filter, expanded
	// with buyer, employee, location and per-line product, plus the total count
	FindManaged(ctx context.Context, f ManagementFilter, page, pageSize int) ([]Order, int64, error)
	// CountByStatus returns per-status counts over the given order ids,
	// scoped by the filter's included/excluded sets the same way FindManaged is
	CountByStatus(ctx context.Context, ids []uuid.UUID, f ManagementFilter) (map[Status]int64, error)
	// StockOnHand returns distinct in-stock quantities of the products
	// referenced by the given order ids
	StockOnHand(ctx context.Context, ids []uuid.UUID) ([]ProductStock, error)
}
