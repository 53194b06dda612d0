package importing

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the storage port for inventory imports
type Repository interface {
	// FindByID loads an import header together with its lines
	FindByID(ctx context.Context, id uuid.UUID) (*Import, error)
	// CreateWithLines persists the header and all its lines as one atomic unit
	CreateWithLines(ctx context.Context, im *Import) error
	// SaveWithLines persists the header and upserts all its lines as one
	// atomic unit; used by the merge-on-update path
	SaveWithLines(ctx context.Context, im *Import) error
}
