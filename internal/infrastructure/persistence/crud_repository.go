package persistence

import (
	"context"
	"errors"

	"github.com/ecom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCrudRepository implements shared.CrudRepository for any GORM model
type GormCrudRepository[T any] struct {
	db *gorm.DB
}

// NewGormCrudRepository creates a new GormCrudRepository
func NewGormCrudRepository[T any](db *gorm.DB) *GormCrudRepository[T] {
	return &GormCrudRepository[T]{db: db}
}

// FindPage returns one page of records plus the unpaged total count
func (r *GormCrudRepository[T]) FindPage(ctx context.Context, offset, limit int) ([]T, int64, error) {
	var model T
	var total int64
	if err := r.db.WithContext(ctx).Model(&model).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []T
	if err := r.db.WithContext(ctx).Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// FindByID finds a record by its ID
func (r *GormCrudRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// FindOneBy finds the first record matching all the given column conditions
func (r *GormCrudRepository[T]) FindOneBy(ctx context.Context, conds map[string]any) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where(conds).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// Create inserts a new record
func (r *GormCrudRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// Patch applies the given column updates to the entity's row and reloads the
// entity so the caller sees the merged state.
func (r *GormCrudRepository[T]) Patch(ctx context.Context, entity *T, patch map[string]any) error {
	if err := r.db.WithContext(ctx).Model(entity).Updates(patch).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).First(entity).Error
}

// Delete removes the record with the given ID
func (r *GormCrudRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	var model T
	return r.db.WithContext(ctx).Delete(&model, "id = ?", id).Error
}
