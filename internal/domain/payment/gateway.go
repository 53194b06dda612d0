package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Initiation is the result of handing an order to the external payment
// gateway: a redirect URL the buyer completes the payment on.
type Initiation struct {
	OrderID   uuid.UUID       `json:"order_id"`
	Amount    decimal.Decimal `json:"amount"`
	PayURL    string          `json:"pay_url"`
	RequestID string          `json:"request_id"`
}

// Result is the gateway's callback report, keyed by the same order id that
// was handed to Initiate.
type Result struct {
	OrderID       uuid.UUID `json:"order_id"`
	Success       bool      `json:"success"`
	TransactionID string    `json:"transaction_id"`
	Message       string    `json:"message"`
}

// Gateway is the boundary to the external payment provider. The HTTP client
// behind it is out of scope for this core.
type Gateway interface {
	Initiate(ctx context.Context, orderID uuid.UUID, amount decimal.Decimal) (*Initiation, error)
}
