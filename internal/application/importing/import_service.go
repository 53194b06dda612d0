// Package importing implements the inbound-stock mirror of the order
// transaction core: atomic multi-row creation plus merge-on-update of
// per-product quantity/price lines.
package importing

import (
	"context"

	"github.com/ecom/backend/internal/domain/importing"
	"github.com/ecom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Fixed, non-leaking errors surfaced from the transactional write paths
var (
	ErrImportSaveFailed   = shared.NewInternalError("import save failed")
	ErrImportUpdateFailed = shared.NewInternalError("import update failed")
	// ErrImportUpdateTargetMissing is returned when the update target id
	// does not resolve to a stored import
	ErrImportUpdateTargetMissing = shared.NewNotFoundError("import update target missing")
)

// Service handles inventory import transactions
type Service struct {
	imports importing.Repository
	codes   shared.CodeGenerator
	logger  *zap.Logger
}

// NewService creates a new import Service
func NewService(imports importing.Repository, codes shared.CodeGenerator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{imports: imports, codes: codes, logger: logger}
}

// Create persists an import header plus all its lines, or nothing at all.
// Mirrors order creation: any failure rolls the write back and surfaces the
// same fixed internal error without consuming a code.
func (s *Service) Create(ctx context.Context, req CreateImportRequest) (*importing.Import, error) {
	if len(req.Lines) == 0 {
		s.logger.Warn("import create rejected: empty line list", zap.String("employee_id", req.EmployeeID.String()))
		return nil, ErrImportSaveFailed
	}

	code, err := s.codes.Next(ctx, importing.CodePrefix)
	if err != nil {
		s.logger.Error("import code generation failed", zap.Error(err))
		return nil, ErrImportSaveFailed
	}

	im, err := importing.NewImport(code, req.EmployeeID, req.Total)
	if err != nil {
		s.logger.Error("import build failed", zap.Error(err))
		return nil, ErrImportSaveFailed
	}
	for _, line := range req.Lines {
		if _, err := im.AddLine(line.ProductID, line.Quantity, line.Price); err != nil {
			s.logger.Error("import line build failed", zap.Error(err))
			return nil, ErrImportSaveFailed
		}
	}

	if err := s.imports.CreateWithLines(ctx, im); err != nil {
		s.logger.Error("import save failed", zap.String("code", code), zap.Error(err))
		return nil, ErrImportSaveFailed
	}
	return im, nil
}

// Update loads the import aggregate, merges each incoming line by product id
// (mutate on match, append otherwise), overwrites the header's total,
// employee and code from the request, and persists everything in one save.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateImportRequest) (*importing.Import, error) {
	im, err := s.imports.FindByID(ctx, id)
	if err != nil {
		if shared.ErrorCode(err) == shared.CodeNotFound {
			return nil, ErrImportUpdateTargetMissing
		}
		s.logger.Error("import load failed", zap.String("id", id.String()), zap.Error(err))
		return nil, ErrImportUpdateFailed
	}

	for _, line := range req.Lines {
		if _, err := im.MergeLine(line.ProductID, line.Quantity, line.Price); err != nil {
			s.logger.Error("import line merge failed", zap.Error(err))
			return nil, ErrImportUpdateFailed
		}
	}

	im.Total = req.Total
	im.EmployeeID = req.EmployeeID
	if req.Code != "" {
		im.Code = req.Code
	}

	if err := s.imports.SaveWithLines(ctx, im); err != nil {
		s.logger.Error("import update failed", zap.String("id", id.String()), zap.Error(err))
		return nil, ErrImportUpdateFailed
	}
	return im, nil
}

// Get loads an import together with its lines
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*importing.Import, error) {
	return s.imports.FindByID(ctx, id)
}
