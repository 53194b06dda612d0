package order

import (
	"context"

	"github.com/ecom/backend/internal/domain/order"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ManagementService builds the aggregated, multi-filter administrative order
// views: a filtered page of expanded orders plus per-status counts, and in
// the operational-dashboard case the distinct stock-on-hand figures.
type ManagementService struct {
	orders order.Repository
	logger *zap.Logger
}

// NewManagementService creates a new ManagementService
func NewManagementService(orders order.Repository, logger *zap.Logger) *ManagementService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ManagementService{orders: orders, logger: logger}
}

// List runs the primary paged query and the auxiliary aggregations scoped to
// the ids the primary query selected. With zero selected ids the
// aggregations short-circuit to empty results without touching the store.
func (s *ManagementService) List(ctx context.Context, req ManagementListRequest) (*ManagementResult, error) {
	page := req.Page
	if page <= 0 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}

	filter := order.ManagementFilter{
		Status:           req.Status,
		IncludedStatuses: req.IncludedStatuses,
		ExcludedStatuses: req.ExcludedStatuses,
		PaymentStatus:    req.PaymentStatus,
	}.Normalized()

	orders, total, err := s.orders.FindManaged(ctx, filter, page, pageSize)
	if err != nil {
		return nil, err
	}

	result := &ManagementResult{
		Orders:       orders,
		Total:        total,
		StatusCounts: map[order.Status]int64{},
	}

	if len(orders) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
	}

	counts, err := s.orders.CountByStatus(ctx, ids, filter)
	if err != nil {
		return nil, err
	}
	result.StatusCounts = counts

	// Stock figures belong to the operational dashboard only, which is the
	// excluded-status filter mode.
	if len(filter.ExcludedStatuses) > 0 {
		stock, err := s.orders.StockOnHand(ctx, ids)
		if err != nil {
			return nil, err
		}
		result.Stock = stock
	}

	return result, nil
}
