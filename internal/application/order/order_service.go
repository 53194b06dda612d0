package order

import (
	"context"

	"github.com/ecom/backend/internal/domain/order"
	"github.com/ecom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Fixed, non-leaking errors surfaced from the transactional write paths.
// The underlying cause is logged but never handed to the caller.
var (
	ErrOrderSaveFailed   = shared.NewInternalError("order save failed")
	ErrOrderUpdateFailed = shared.NewInternalError("order update failed")
	// ErrOrderUpdateTargetMissing is returned when the update target id
	// does not resolve to a stored order
	ErrOrderUpdateTargetMissing = shared.NewNotFoundError("order update target missing")
)

// Service handles the order transaction core: atomic creation of a header
// plus its lines, and partial updates of the header's mutable fields.
type Service struct {
	orders   order.Repository
	codes    shared.CodeGenerator
	notifier Notifier
	mailer   Mailer
	logger   *zap.Logger
}

// NewService creates a new order Service. Notifier and mailer are optional;
// when nil the success notification is skipped.
func NewService(orders order.Repository, codes shared.CodeGenerator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		orders: orders,
		codes:  codes,
		logger: logger,
	}
}

// SetNotifier sets the admin notification collaborator
func (s *Service) SetNotifier(n Notifier) {
	s.notifier = n
}

// SetMailer sets the email collaborator
func (s *Service) SetMailer(m Mailer) {
	s.mailer = m
}

// Create persists an order header plus all its lines, or nothing at all.
// The header starts in the Checking state with no assigned employee. Every
// failure along the way rolls the write back and surfaces the same fixed
// internal error; the cause is only logged.
func (s *Service) Create(ctx context.Context, req CreateOrderRequest) (*order.Order, error) {
	if len(req.Lines) == 0 {
		s.logger.Warn("order create rejected: empty line list", zap.String("user_id", req.UserID.String()))
		return nil, ErrOrderSaveFailed
	}

	code, err := s.codes.Next(ctx, order.CodePrefix)
	if err != nil {
		s.logger.Error("order code generation failed", zap.Error(err))
		return nil, ErrOrderSaveFailed
	}

	o, err := order.NewOrder(code, req.UserID, req.LocationID, req.TotalPrice,
		req.PaymentMethod, order.ParsePaymentStatus(req.PaymentStatus))
	if err != nil {
		s.logger.Error("order build failed", zap.Error(err))
		return nil, ErrOrderSaveFailed
	}
	for _, line := range req.Lines {
		if _, err := o.AddLine(line.ProductID, line.Quantity, line.Price); err != nil {
			s.logger.Error("order line build failed", zap.Error(err))
			return nil, ErrOrderSaveFailed
		}
	}

	if err := s.orders.CreateWithLines(ctx, o); err != nil {
		s.logger.Error("order save failed", zap.String("code", code), zap.Error(err))
		return nil, ErrOrderSaveFailed
	}

	s.notifyAdmins(ctx, o)
	return o, nil
}

// Update applies only the explicitly provided fields onto the stored order.
// A nil field leaves the stored value untouched; a payment status outside
// the defined enum values yields an unset payment status.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateOrderRequest) (*order.Order, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if shared.ErrorCode(err) == shared.CodeNotFound {
			return nil, ErrOrderUpdateTargetMissing
		}
		s.logger.Error("order load failed", zap.String("id", id.String()), zap.Error(err))
		return nil, ErrOrderUpdateFailed
	}

	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, shared.NewDomainError(shared.CodeInvalidInput, "Unknown order status")
		}
		o.Status = *req.Status
	}
	if req.EmployeeID != nil {
		o.EmployeeID = req.EmployeeID
	}
	if req.PaymentStatus != nil {
		o.PaymentStatus = order.ParsePaymentStatus(*req.PaymentStatus)
	}

	if err := s.orders.Update(ctx, o); err != nil {
		s.logger.Error("order update failed", zap.String("id", id.String()), zap.Error(err))
		return nil, ErrOrderUpdateFailed
	}
	return o, nil
}

// Get loads an order together with its lines
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	return s.orders.FindByID(ctx, id)
}

// notifyAdmins dispatches the best-effort success notification. Failures are
// logged and never affect the already-committed order.
func (s *Service) notifyAdmins(ctx context.Context, o *order.Order) {
	if s.notifier == nil {
		return
	}
	message := "New order " + o.Code + " has been placed"
	if err := s.notifier.SendNotification(ctx, o, message, o.Status, "order_created"); err != nil {
		s.logger.Warn("order notification failed", zap.String("code", o.Code), zap.Error(err))
		if s.mailer != nil {
			mail := EmailMessage{
				Subject:  "New order " + o.Code,
				TextBody: message,
			}
			if err := s.mailer.SendNotificationEmail(ctx, []EmailMessage{mail}); err != nil {
				s.logger.Warn("order notification email failed", zap.String("code", o.Code), zap.Error(err))
			}
		}
	}
}
