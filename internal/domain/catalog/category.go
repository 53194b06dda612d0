package catalog

import "github.com/ecom/backend/internal/domain/shared"

// Category represents a product category
type Category struct {
	shared.BaseEntity
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category
func NewCategory(name, description string) (*Category, error) {
	if name == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Category name cannot be empty")
	}
	return &Category{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
	}, nil
}
