// Package payment drives the external gateway boundary: initiating a
// payment for a stored order and folding the gateway's callback back into
// the order's payment status.
package payment

import (
	"context"

	appOrder "github.com/ecom/backend/internal/application/order"
	"github.com/ecom/backend/internal/domain/order"
	"github.com/ecom/backend/internal/domain/payment"
	"github.com/ecom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service coordinates the gateway with the order transaction core
type Service struct {
	gateway payment.Gateway
	orders  order.Repository
	updater *appOrder.Service
	logger  *zap.Logger
}

// NewService creates a new payment service
func NewService(gateway payment.Gateway, orders order.Repository, updater *appOrder.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{gateway: gateway, orders: orders, updater: updater, logger: logger}
}

// Initiate hands the stored order's total to the gateway and returns the
// redirect the buyer completes the payment on. Without a configured gateway
// the request is rejected up front.
func (s *Service) Initiate(ctx context.Context, orderID uuid.UUID) (*payment.Initiation, error) {
	if s.gateway == nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "payment gateway not configured")
	}
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	initiation, err := s.gateway.Initiate(ctx, o.ID, o.TotalPrice)
	if err != nil {
		s.logger.Error("payment initiation failed", zap.String("order_id", orderID.String()), zap.Error(err))
		return nil, err
	}
	return initiation, nil
}

// HandleCallback records the gateway's verdict on the order. Success marks
// the order paid; failure marks it unpaid. Other order fields stay untouched.
func (s *Service) HandleCallback(ctx context.Context, result payment.Result) (*order.Order, error) {
	status := string(order.PaymentStatusUnpaid)
	if result.Success {
		status = string(order.PaymentStatusPaid)
	}
	s.logger.Info("payment callback",
		zap.String("order_id", result.OrderID.String()),
		zap.Bool("success", result.Success),
		zap.String("transaction_id", result.TransactionID))
	return s.updater.Update(ctx, result.OrderID, appOrder.UpdateOrderRequest{PaymentStatus: &status})
}
