package payment

import (
	"context"
	"errors"
	"testing"

	appOrder "github.com/ecom/backend/internal/application/order"
	"github.com/ecom/backend/internal/domain/order"
	"github.com/ecom/backend/internal/domain/payment"
	"github.com/ecom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockGateway is a mock implementation of payment.Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Initiate(ctx context.Context, orderID uuid.UUID, amount decimal.Decimal) (*payment.Initiation, error) {
	args := m.Called(ctx, orderID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Initiation), args.Error(1)
}

// MockOrderRepository is a mock implementation of order.Repository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) CreateWithLines(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) FindManaged(ctx context.Context, f order.ManagementFilter, page, pageSize int) ([]order.Order, int64, error) {
	args := m.Called(ctx, f, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]order.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context, ids []uuid.UUID, f order.ManagementFilter) (map[order.Status]int64, error) {
	args := m.Called(ctx, ids, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[order.Status]int64), args.Error(1)
}

func (m *MockOrderRepository) StockOnHand(ctx context.Context, ids []uuid.UUID) ([]order.ProductStock, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.ProductStock), args.Error(1)
}

func storedOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder("ORD00009", uuid.New(), uuid.New(), decimal.NewFromInt(250), order.PaymentMethodMomo, order.PaymentStatusUnpaid)
	require.NoError(t, err)
	return o
}

func TestService_Initiate(t *testing.T) {
	t.Run("hands the stored total to the gateway", func(t *testing.T) {
		repo := new(MockOrderRepository)
		gateway := new(MockGateway)
		svc := NewService(gateway, repo, nil, nil)

		o := storedOrder(t)
		repo.On("FindByID", mock.Anything, o.ID).Return(o, nil)
		gateway.On("Initiate", mock.Anything, o.ID, o.TotalPrice).Return(&payment.Initiation{
			OrderID: o.ID,
			Amount:  o.TotalPrice,
			PayURL:  "https://pay.example/redirect",
		}, nil)

		initiation, err := svc.Initiate(context.Background(), o.ID)
		require.NoError(t, err)
		assert.Equal(t, "https://pay.example/redirect", initiation.PayURL)
		gateway.AssertExpectations(t)
	})

	t.Run("gateway failure propagates", func(t *testing.T) {
		repo := new(MockOrderRepository)
		gateway := new(MockGateway)
		svc := NewService(gateway, repo, nil, nil)

		o := storedOrder(t)
		repo.On("FindByID", mock.Anything, o.ID).Return(o, nil)
		gateway.On("Initiate", mock.Anything, o.ID, o.TotalPrice).Return(nil, errors.New("gateway down"))

		_, err := svc.Initiate(context.Background(), o.ID)
		require.Error(t, err)
	})

	t.Run("unconfigured gateway rejects without loading the order", func(t *testing.T) {
		repo := new(MockOrderRepository)
		svc := NewService(nil, repo, nil, nil)

		initiation, err := svc.Initiate(context.Background(), uuid.New())
		require.Error(t, err)
		assert.Nil(t, initiation)
		assert.Equal(t, shared.CodeInvalidInput, shared.ErrorCode(err))
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestService_HandleCallback(t *testing.T) {
	newService := func(repo *MockOrderRepository) *Service {
		updater := appOrder.NewService(repo, nil, nil)
		return NewService(new(MockGateway), repo, updater, nil)
	}

	t.Run("success marks the order paid", func(t *testing.T) {
		repo := new(MockOrderRepository)
		svc := newService(repo)

		o := storedOrder(t)
		repo.On("FindByID", mock.Anything, o.ID).Return(o, nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(saved *order.Order) bool {
			return saved.PaymentStatus == order.PaymentStatusPaid
		})).Return(nil)

		updated, err := svc.HandleCallback(context.Background(), payment.Result{OrderID: o.ID, Success: true})
		require.NoError(t, err)
		assert.Equal(t, order.PaymentStatusPaid, updated.PaymentStatus)
		repo.AssertExpectations(t)
	})

	t.Run("failure marks the order unpaid without touching other fields", func(t *testing.T) {
		repo := new(MockOrderRepository)
		svc := newService(repo)

		o := storedOrder(t)
		originalStatus := o.Status
		repo.On("FindByID", mock.Anything, o.ID).Return(o, nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(saved *order.Order) bool {
			return saved.PaymentStatus == order.PaymentStatusUnpaid && saved.Status == originalStatus
		})).Return(nil)

		_, err := svc.HandleCallback(context.Background(), payment.Result{OrderID: o.ID, Success: false})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}
