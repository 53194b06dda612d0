// Package crud provides the uniform create/read/update/delete contract that
// every simple entity service (category, product, user, location, cart) is
// built on. Concrete services hold a Service[T] and add their own domain
// methods instead of inheriting from it.
package crud

import (
	"context"

	"github.com/ecom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Default pagination applied when the caller leaves limit/page unset
const (
	DefaultLimit = 10
	DefaultPage  = 1
)

// Service implements the generic CRUD contract over an injected storage port
type Service[T any] struct {
	repo shared.CrudRepository[T]
}

// NewService creates a new generic CRUD service
func NewService[T any](repo shared.CrudRepository[T]) *Service[T] {
	return &Service[T]{repo: repo}
}

// FindAll returns one page of records with the total count and the
// effective page numbers. Page and limit fall back to their defaults when
// non-positive; the offset is (page-1)*limit and no ordering beyond the
// store default is imposed.
func (s *Service[T]) FindAll(ctx context.Context, limit, page int) (*shared.Paginated[T], error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if page <= 0 {
		page = DefaultPage
	}
	offset := (page - 1) * limit
	items, total, err := s.repo.FindPage(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	result := shared.NewPaginated(items, total, page, limit)
	return &result, nil
}

// Create persists a new record unless one matching the caller-supplied
// uniqueness condition already exists. With a matching record present the
// store is never asked to create anything and ErrAlreadyExists is returned.
func (s *Service[T]) Create(ctx context.Context, entity *T, uniqueness map[string]any) (*T, error) {
	if len(uniqueness) > 0 {
		_, err := s.repo.FindOneBy(ctx, uniqueness)
		if err == nil {
			return nil, shared.ErrAlreadyExists
		}
		if shared.ErrorCode(err) != shared.CodeNotFound {
			return nil, err
		}
	}
	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// FindOne looks a record up by id, failing with a NOT_FOUND error when absent
func (s *Service[T]) FindOne(ctx context.Context, id uuid.UUID) (*T, error) {
	return s.repo.FindByID(ctx, id)
}

// Update loads the record by id (propagating NOT_FOUND on a miss), shallow-
// merges the patch onto it and persists the merged record. Keys absent from
// the patch keep their stored values.
func (s *Service[T]) Update(ctx context.Context, patch map[string]any, id uuid.UUID) (*T, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(patch) == 0 {
		return entity, nil
	}
	if err := s.repo.Patch(ctx, entity, patch); err != nil {
		return nil, err
	}
	return entity, nil
}

// Delete requires the record to exist (propagating NOT_FOUND on a miss)
// before issuing the delete.
func (s *Service[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
