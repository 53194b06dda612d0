package order

import (
	"context"

	"github.com/ecom/backend/internal/domain/order"
)

// EmailMessage is one email handed to the mail collaborator
type EmailMessage struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	TextBody string `json:"text_body"`
	HTMLBody string `json:"html_body"`
}

// Notifier dispatches an in-app notification about an order to the
// administrator accounts. Delivery details live behind this boundary.
type Notifier interface {
	SendNotification(ctx context.Context, o *order.Order, message string, status order.Status, kind string) error
}

// Mailer queues notification emails for administrators without a live
// notification channel.
type Mailer interface {
	SendNotificationEmail(ctx context.Context, messages []EmailMessage) error
}
