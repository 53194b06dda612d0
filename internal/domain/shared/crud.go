package shared

import (
	"context"

	"github.com/google/uuid"
)

// CrudRepository is the storage port shared by every simple entity type.
// Implementations return ErrNotFound when a lookup resolves to no record.
type CrudRepository[T any] interface {
	// FindPage returns one page of records plus the total unfiltered count.
	FindPage(ctx context.Context, offset, limit int) ([]T, int64, error)
	// FindByID looks a record up by primary key.
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	// FindOneBy looks a single record up by column equality conditions.
	FindOneBy(ctx context.Context, conds map[string]any) (*T, error)
	// Create persists a new record.
	Create(ctx context.Context, entity *T) error
	// Patch applies the given column values on top of the loaded record and
	// reloads entity so it reflects the merged state.
	Patch(ctx context.Context, entity *T, patch map[string]any) error
	// Delete removes a record by primary key.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CodeGenerator produces unique, human-readable, monotonically increasing
// entity codes with a fixed prefix and a zero-padded numeric suffix.
type CodeGenerator interface {
	Next(ctx context.Context, prefix string) (string, error)
}
