package importing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineRequest is one product entry of an import create or update request
type LineRequest struct {
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// CreateImportRequest carries the validated parameters for import creation
type CreateImportRequest struct {
	EmployeeID uuid.UUID       `json:"employee_id"`
	Total      decimal.Decimal `json:"total"`
	Lines      []LineRequest   `json:"lines"`
}

// UpdateImportRequest carries the full replacement header fields plus the
// incoming lines to merge onto the stored aggregate.
type UpdateImportRequest struct {
	Code       string          `json:"code"`
	EmployeeID uuid.UUID       `json:"employee_id"`
	Total      decimal.Decimal `json:"total"`
	Lines      []LineRequest   `json:"lines"`
}
