package partner

import (
	"github.com/ecom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Location represents a delivery address owned by a user
type Location struct {
	shared.BaseEntity
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Receiver  string    `gorm:"type:varchar(200);not null" json:"receiver"`
	Phone     string    `gorm:"type:varchar(50);not null" json:"phone"`
	Address   string    `gorm:"type:varchar(500);not null" json:"address"`
	City      string    `gorm:"type:varchar(100)" json:"city"`
	IsDefault bool      `gorm:"not null;default:false" json:"is_default"`
}

// TableName returns the table name for GORM
func (Location) TableName() string {
	return "locations"
}

// NewLocation creates a new delivery location
func NewLocation(userID uuid.UUID, receiver, phone, address, city string) (*Location, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "User ID cannot be empty")
	}
	if address == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Address cannot be empty")
	}
	return &Location{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Receiver:   receiver,
		Phone:      phone,
		Address:    address,
		City:       city,
	}, nil
}
