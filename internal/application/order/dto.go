package order

import (
	"time"

	"github.com/ecom/backend/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrderLineRequest is one product entry of an order creation request
type CreateOrderLineRequest struct {
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// CreateOrderRequest carries the validated parameters for order creation
type CreateOrderRequest struct {
	UserID        uuid.UUID                `json:"user_id"`
	LocationID    uuid.UUID                `json:"location_id"`
	TotalPrice    decimal.Decimal          `json:"total_price"`
	PaymentMethod order.PaymentMethod      `json:"payment_method" binding:"required,payment_method"`
	PaymentStatus string                   `json:"payment_status"`
	Lines         []CreateOrderLineRequest `json:"lines"`
}

// UpdateOrderRequest carries the optional mutable fields of an order.
// A nil field leaves the stored value untouched.
type UpdateOrderRequest struct {
	Status        *order.Status `json:"status" binding:"omitempty,order_status"`
	EmployeeID    *uuid.UUID    `json:"employee_id"`
	PaymentStatus *string       `json:"payment_status"`
}

// ManagementListRequest is the filter bundle for the administrative listing
type ManagementListRequest struct {
	Page             int
	PageSize         int
	Status           *order.Status
	IncludedStatuses []order.Status
	ExcludedStatuses []order.Status
	PaymentStatus    *order.PaymentStatus
}

// ManagementResult is the aggregated administrative view: one page of
// expanded orders, the total matching count, per-status counts over the
// selected page, and (in excluded-status mode only) stock-on-hand figures.
type ManagementResult struct {
	Orders       []order.Order          `json:"orders"`
	Total        int64                  `json:"total"`
	StatusCounts map[order.Status]int64 `json:"status_counts"`
	Stock        []order.ProductStock   `json:"stock,omitempty"`
}

// OrderResponse is the plain data structure handed back to the HTTP layer
type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	Code          string              `json:"code"`
	TotalPrice    decimal.Decimal     `json:"total_price"`
	Status        order.Status        `json:"status"`
	PaymentMethod order.PaymentMethod `json:"payment_method"`
	PaymentStatus order.PaymentStatus `json:"payment_status"`
	UserID        uuid.UUID           `json:"user_id"`
	EmployeeID    *uuid.UUID          `json:"employee_id"`
	LocationID    uuid.UUID           `json:"location_id"`
	Lines         []order.Line        `json:"lines,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

// ToOrderResponse converts a domain order to its response form
func ToOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		Code:          o.Code,
		TotalPrice:    o.TotalPrice,
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		PaymentStatus: o.PaymentStatus,
		UserID:        o.UserID,
		EmployeeID:    o.EmployeeID,
		LocationID:    o.LocationID,
		Lines:         o.Lines,
		CreatedAt:     o.CreatedAt,
	}
}
