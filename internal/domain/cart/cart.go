package cart

import (
	"github.com/ecom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Item represents one product a user has placed in their cart
type Item struct {
	shared.BaseEntity
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_cart_user_product,unique" json:"user_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index:idx_cart_user_product,unique" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "cart_items"
}

// NewItem creates a new cart item
func NewItem(userID, productID uuid.UUID, quantity int) (*Item, error) {
	if userID == uuid.Nil || productID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "User ID and product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Quantity must be positive")
	}
	return &Item{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		ProductID:  productID,
		Quantity:   quantity,
	}, nil
}
