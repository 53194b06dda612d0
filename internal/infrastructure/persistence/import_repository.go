package persistence

import (
	"context"
	"errors"

	"github.com/ecom/backend/internal/domain/importing"
	"github.com/ecom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormImportRepository implements importing.Repository using GORM
type GormImportRepository struct {
	db *gorm.DB
}

// NewGormImportRepository creates a new GormImportRepository
func NewGormImportRepository(db *gorm.DB) *GormImportRepository {
	return &GormImportRepository{db: db}
}

// FindByID loads an import header together with its lines
func (r *GormImportRepository) FindByID(ctx context.Context, id uuid.UUID) (*importing.Import, error) {
	var im importing.Import
	err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&im, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &im, nil
}

// CreateWithLines persists the header and all its lines in one transaction
func (r *GormImportRepository) CreateWithLines(ctx context.Context, im *importing.Import) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(im).Error; err != nil {
			return err
		}
		if len(im.Lines) == 0 {
			return nil
		}
		return tx.Create(&im.Lines).Error
	})
}

// SaveWithLines persists the header and upserts every line in one
// transaction. Mutated lines keep their ids, so existing rows are updated
// in place and appended lines are inserted.
func (r *GormImportRepository) SaveWithLines(ctx context.Context, im *importing.Import) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(im).Error; err != nil {
			return err
		}
		if len(im.Lines) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&im.Lines).Error
	})
}
