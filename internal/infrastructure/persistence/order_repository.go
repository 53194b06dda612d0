package persistence

import (
	"context"
	"errors"

	"github.com/ecom/backend/internal/domain/order"
	"github.com/ecom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements order.Repository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID loads an order header together with its lines
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var o order.Order
	err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&o, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// CreateWithLines persists the header and all its lines in one transaction;
// a failing line insert rolls the header back too.
func (r *GormOrderRepository) CreateWithLines(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(o).Error; err != nil {
			return err
		}
		if len(o.Lines) == 0 {
			return nil
		}
		return tx.Create(&o.Lines).Error
	})
}

// Update persists the header's mutable fields; lines are left untouched
func (r *GormOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(o).Error
}

// FindManaged returns one page of orders matching the filter, expanded with
// buyer, employee, location and per-line product, plus the total count.
// Callers pass a normalized filter; the precedence between exact status and
// the status sets is already resolved.
func (r *GormOrderRepository) FindManaged(ctx context.Context, f order.ManagementFilter, page, pageSize int) ([]order.Order, int64, error) {
	base := r.applyFilter(r.db.WithContext(ctx).Model(&order.Order{}), f)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []order.Order
	err := r.applyFilter(r.db.WithContext(ctx), f).
		Preload("Lines").
		Preload("Lines.Product").
		Preload("User").
		Preload("Employee").
		Preload("Location").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// CountByStatus returns per-status counts over the given order ids, scoped by
// the filter's status sets the same way FindManaged is.
func (r *GormOrderRepository) CountByStatus(ctx context.Context, ids []uuid.UUID, f order.ManagementFilter) (map[order.Status]int64, error) {
	type row struct {
		Status order.Status
		Count  int64
	}
	var rows []row
	query := r.applyStatusSets(r.db.WithContext(ctx).Model(&order.Order{}), f).
		Select("status, COUNT(*) AS count").
		Where("id IN ?", ids).
		Group("status")
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[order.Status]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Status] = rw.Count
	}
	return counts, nil
}

// StockOnHand returns distinct in-stock quantities of the products referenced
// by the given order ids.
func (r *GormOrderRepository) StockOnHand(ctx context.Context, ids []uuid.UUID) ([]order.ProductStock, error) {
	var stocks []order.ProductStock
	err := r.db.WithContext(ctx).
		Table("order_lines").
		Select("DISTINCT order_lines.product_id, products.quantity AS in_stock").
		Joins("JOIN products ON products.id = order_lines.product_id").
		Where("order_lines.order_id IN ?", ids).
		Scan(&stocks).Error
	if err != nil {
		return nil, err
	}
	return stocks, nil
}

func (r *GormOrderRepository) applyFilter(query *gorm.DB, f order.ManagementFilter) *gorm.DB {
	query = r.applyStatusSets(query, f)
	if f.PaymentStatus != nil {
		query = query.Where("payment_status = ?", *f.PaymentStatus)
	}
	return query
}

func (r *GormOrderRepository) applyStatusSets(query *gorm.DB, f order.ManagementFilter) *gorm.DB {
	switch {
	case f.Status != nil:
		query = query.Where("status = ?", *f.Status)
	case len(f.IncludedStatuses) > 0:
		query = query.Where("status IN ?", f.IncludedStatuses)
	case len(f.ExcludedStatuses) > 0:
		query = query.Where("status NOT IN ?", f.ExcludedStatuses)
	}
	return query
}
