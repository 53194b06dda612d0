package order

import (
	"github.com/ecom/backend/internal/domain/catalog"
	"github.com/ecom/backend/internal/domain/identity"
	"github.com/ecom/backend/internal/domain/partner"
	"github.com/ecom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CodePrefix is the fixed prefix of generated order codes (ORD00001, ...)
const CodePrefix = "ORD"

// Status represents the status of an order
type Status string

const (
	StatusChecking   Status = "Checking"
	StatusConfirmed  Status = "Confirmed"
	StatusDelivering Status = "Delivering"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
	StatusRefunded   Status = "Refunded"
)

// AllStatuses lists every defined order status
func AllStatuses() []Status {
	return []Status{
		StatusChecking,
		StatusConfirmed,
		StatusDelivering,
		StatusDelivered,
		StatusCancelled,
		StatusRefunded,
	}
}

// IsValid checks if the status is a defined Status value
func (s Status) IsValid() bool {
	switch s {
	case StatusChecking, StatusConfirmed, StatusDelivering, StatusDelivered, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// PaymentMethod represents how an order is paid
type PaymentMethod string

const (
	PaymentMethodCOD  PaymentMethod = "CashOnDelivery"
	PaymentMethodMomo PaymentMethod = "Momo"
)

// IsValid checks if the method is a defined PaymentMethod value
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCOD, PaymentMethodMomo:
		return true
	}
	return false
}

// PaymentStatus represents the payment state of an order.
// The zero value means the payment status is unset.
type PaymentStatus string

const (
	PaymentStatusUnset    PaymentStatus = ""
	PaymentStatusUnpaid   PaymentStatus = "Unpaid"
	PaymentStatusPaid     PaymentStatus = "Paid"
	PaymentStatusRefunded PaymentStatus = "Refunded"
)

// IsValid checks if the payment status is a defined, non-empty value
func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentStatusUnpaid, PaymentStatusPaid, PaymentStatusRefunded:
		return true
	}
	return false
}

// ParsePaymentStatus maps an input string onto a defined PaymentStatus.
// An unknown input yields PaymentStatusUnset rather than an error; callers
// that want strict validation should check IsValid on the input themselves.
func ParsePaymentStatus(s string) PaymentStatus {
	p := PaymentStatus(s)
	if !p.IsValid() {
		return PaymentStatusUnset
	}
	return p
}

// Line represents one product/quantity/price entry belonging to an order.
// Lines are created atomically with the header and never mutated afterwards.
type Line struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID        `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity  int              `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal  `gorm:"type:decimal(18,2);not null" json:"price"`
	Product   *catalog.Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName returns the table name for GORM
func (Line) TableName() string {
	return "order_lines"
}

// NewLine creates a new order line
func NewLine(orderID, productID uuid.UUID, quantity int, price decimal.Decimal) (*Line, error) {
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
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
	}, nil
}

// Order is the header record representing one customer purchase.
// The order core never hard-deletes orders.
type Order struct {
	shared.BaseEntity
	Code          string           `gorm:"type:varchar(20);not null;uniqueIndex" json:"code"`
	TotalPrice    decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0" json:"total_price"`
	Status        Status           `gorm:"type:varchar(20);not null;default:'Checking'" json:"status"`
	PaymentMethod PaymentMethod    `gorm:"type:varchar(20);not null" json:"payment_method"`
	PaymentStatus PaymentStatus    `gorm:"type:varchar(20)" json:"payment_status"`
	UserID        uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	EmployeeID    *uuid.UUID       `gorm:"type:uuid;index" json:"employee_id"`
	LocationID    uuid.UUID        `gorm:"type:uuid;not null" json:"location_id"`
	Lines         []Line           `gorm:"foreignKey:OrderID" json:"lines,omitempty"`
	User          *identity.User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Employee      *identity.User   `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Location      *partner.Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new order header in the initial Checking state with no
// assigned employee. Lines are attached by the caller before the first save.
func NewOrder(code string, userID, locationID uuid.UUID, totalPrice decimal.Decimal, method PaymentMethod, paymentStatus PaymentStatus) (*Order, error) {
	if code == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Order code cannot be empty")
	}
	if userID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "User ID cannot be empty")
	}
	if locationID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Location ID cannot be empty")
	}
	if totalPrice.IsNegative() {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Total price cannot be negative")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Unknown payment method")
	}
	return &Order{
		BaseEntity:    shared.NewBaseEntity(),
		Code:          code,
		TotalPrice:    totalPrice,
		Status:        StatusChecking,
		PaymentMethod: method,
		PaymentStatus: paymentStatus,
		UserID:        userID,
		EmployeeID:    nil,
		LocationID:    locationID,
	}, nil
}

// AddLine builds a line for the given product entry and attaches it to the order
func (o *Order) AddLine(productID uuid.UUID, quantity int, price decimal.Decimal) (*Line, error) {
	line, err := NewLine(o.ID, productID, quantity, price)
	if err != nil {
		return nil, err
	}
	o.Lines = append(o.Lines, *line)
	return &o.Lines[len(o.Lines)-1], nil
}
