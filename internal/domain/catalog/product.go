package catalog

import (
	"github.com/ecom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a sellable product. Quantity is the stock on hand;
// the order core reads it but never decrements it.
type Product struct {
	shared.BaseEntity
	Name        string          `gorm:"type:varchar(200);not null;uniqueIndex" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"price"`
	Quantity    int             `gorm:"not null;default:0" json:"quantity"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	ImageURL    string          `gorm:"type:varchar(500)" json:"image_url"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name, description string, price decimal.Decimal, quantity int, categoryID uuid.UUID) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Product name cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Product price cannot be negative")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Product quantity cannot be negative")
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Category ID cannot be empty")
	}
	return &Product{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    quantity,
		CategoryID:  categoryID,
	}, nil
}
