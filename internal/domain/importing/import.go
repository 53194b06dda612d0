package importing

import (
	"github.com/ecom/backend/internal/domain/identity"
	"github.com/ecom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CodePrefix is the fixed prefix of generated import codes (IPC00001, ...)
const CodePrefix = "IPC"

// Line represents one product/quantity/price entry belonging to an import
type Line struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	ImportID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"import_id"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"price"`
}

// TableName returns the table name for GORM
func (Line) TableName() string {
	return "import_lines"
}

// NewLine creates a new import line
func NewLine(importID, productID uuid.UUID, quantity int, price decimal.Decimal) (*Line, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Quantity must be positive")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Price cannot be negative")
	}
	return &Line{
		ID:        uuid.New(),
		ImportID:  importID,
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
	}, nil
}

// Import is an inbound-stock header record, structurally mirroring an order
type Import struct {
	shared.BaseEntity
	Code       string          `gorm:"type:varchar(20);not null;uniqueIndex" json:"code"`
	Total      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"total"`
	EmployeeID uuid.UUID       `gorm:"type:uuid;not null;index" json:"employee_id"`
	Lines      []Line          `gorm:"foreignKey:ImportID" json:"lines,omitempty"`
	Employee   *identity.User  `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

// TableName returns the table name for GORM
func (Import) TableName() string {
	return "imports"
}

// NewImport creates a new import header
func NewImport(code string, employeeID uuid.UUID, total decimal.Decimal) (*Import, error) {
	if code == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Import code cannot be empty")
	}
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Employee ID cannot be empty")
	}
	if total.IsNegative() {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Total cannot be negative")
	}
	return &Import{
		BaseEntity: shared.NewBaseEntity(),
		Code:       code,
		EmployeeID: employeeID,
		Total:      total,
	}, nil
}

// AddLine builds a line for the given product entry and attaches it to the import
func (im *Import) AddLine(productID uuid.UUID, quantity int, price decimal.Decimal) (*Line, error) {
	line, err := NewLine(im.ID, productID, quantity, price)
	if err != nil {
		return nil, err
	}
	im.Lines = append(im.Lines, *line)
	return &im.Lines[len(im.Lines)-1], nil
}

// MergeLine applies an incoming product entry onto the import's lines. A line
// with the same product id is mutated in place; otherwise a new line is
// appended. This is the merge rule used by the import update operation.
func (im *Import) MergeLine(productID uuid.UUID, quantity int, price decimal.Decimal) (*Line, error) {
	for i := range im.Lines {
		if im.Lines[i].ProductID == productID {
			im.Lines[i].Quantity = quantity
			im.Lines[i].Price = price
			return &im.Lines[i], nil
		}
	}
	return im.AddLine(productID, quantity, price)
}
