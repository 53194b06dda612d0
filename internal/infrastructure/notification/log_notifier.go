// Package notification provides the default delivery adapters behind the
// order service's notifier and mailer boundaries. Both write to the log;
// real channels (websocket push, SMTP) can replace them without touching
// the order core.
package notification

import (
	"context"

	appOrder "github.com/ecom/backend/internal/application/order"
	"github.com/ecom/backend/internal/domain/order"
	"go.uber.org/zap"
)

// LogNotifier implements the order notifier and mailer boundaries on the log
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a new LogNotifier
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger.Named("notification")}
}

// SendNotification records the admin notification in the log
func (n *LogNotifier) SendNotification(ctx context.Context, o *order.Order, message string, status order.Status, kind string) error {
	n.logger.Info("admin notification",
		zap.String("kind", kind),
		zap.String("order_code", o.Code),
		zap.String("status", status.String()),
		zap.String("message", message),
	)
	return nil
}

// SendNotificationEmail records the queued emails in the log
func (n *LogNotifier) SendNotificationEmail(ctx context.Context, messages []appOrder.EmailMessage) error {
	for _, m := range messages {
		n.logger.Info("notification email queued",
			zap.String("to", m.To),
			zap.String("subject", m.Subject),
		)
	}
	return nil
}
