package identity

import "github.com/ecom/backend/internal/domain/shared"

// Role represents a user's role in the shop
type Role string

const (
	RoleCustomer Role = "Customer"
	RoleEmployee Role = "Employee"
	RoleAdmin    Role = "Admin"
)

// IsValid checks if the role is a defined Role value
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleEmployee, RoleAdmin:
		return true
	}
	return false
}

// User represents a shop account. Password hashing and token issuance are
// handled by the excluded auth layer; this core only stores the columns.
type User struct {
	shared.BaseEntity
	Email    string `gorm:"type:varchar(200);not null;uniqueIndex" json:"email"`
	Password string `gorm:"type:varchar(200);not null" json:"-"`
	Name     string `gorm:"type:varchar(200);not null" json:"name"`
	Phone    string `gorm:"type:varchar(50)" json:"phone"`
	Role     Role   `gorm:"type:varchar(20);not null;default:'Customer'" json:"role"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user account
func NewUser(email, password, name string, role Role) (*User, error) {
	if email == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Email cannot be empty")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Unknown role")
	}
	return &User{
		BaseEntity: shared.NewBaseEntity(),
		Email:      email,
		Password:   password,
		Name:       name,
		Role:       role,
	}, nil
}
