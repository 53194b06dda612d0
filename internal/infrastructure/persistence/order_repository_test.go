package persistence

import (
	"context"
	"testing"

	"github.com/ecom/backend/internal/domain/catalog"
	"github.com/ecom/backend/internal/domain/identity"
	"github.com/ecom/backend/internal/domain/order"
	"github.com/ecom/backend/internal/domain/partner"
	"github.com/ecom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupOrderTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&identity.User{},
		&partner.Location{},
		&catalog.Category{},
		&catalog.Product{},
		&order.Order{},
		&order.Line{},
	)
	require.NoError(t, err)

	return db
}

func newStoredProduct(t *testing.T, db *gorm.DB, name string, stock int) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(name, "", decimal.NewFromInt(10), stock, uuid.New())
	require.NoError(t, err)
	require.NoError(t, db.Create(p).Error)
	return p
}

func newOrderWithLine(t *testing.T, code string, productID uuid.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(code, uuid.New(), uuid.New(), decimal.NewFromInt(50), order.PaymentMethodCOD, order.PaymentStatusUnpaid)
	require.NoError(t, err)
	_, err = o.AddLine(productID, 5, decimal.NewFromInt(10))
	require.NoError(t, err)
	return o
}

func TestGormOrderRepository_CreateWithLines(t *testing.T) {
	ctx := context.Background()

	t.Run("persists header and lines together", func(t *testing.T) {
		db := setupOrderTestDB(t)
		repo := NewGormOrderRepository(db)

		o := newOrderWithLine(t, "ORD00001", uuid.New())
		require.NoError(t, repo.CreateWithLines(ctx, o))

		loaded, err := repo.FindByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, "ORD00001", loaded.Code)
		require.Len(t, loaded.Lines, 1)
		assert.Equal(t, 5, loaded.Lines[0].Quantity)
	})

	t.Run("failing line insert rolls the header back", func(t *testing.T) {
		db := setupOrderTestDB(t)
		repo := NewGormOrderRepository(db)

		o := newOrderWithLine(t, "ORD00002", uuid.New())
		// Second line reuses the first line's primary key so its insert
		// must fail after the header insert succeeded.
		dup := o.Lines[0]
		dup.ProductID = uuid.New()
		o.Lines = append(o.Lines, dup)

		err := repo.CreateWithLines(ctx, o)
		require.Error(t, err)

		var headers int64
		require.NoError(t, db.Model(&order.Order{}).Count(&headers).Error)
		assert.Equal(t, int64(0), headers)
		var lines int64
		require.NoError(t, db.Model(&order.Line{}).Count(&lines).Error)
		assert.Equal(t, int64(0), lines)
	})

	t.Run("missing id yields a not-found domain error", func(t *testing.T) {
		repo := NewGormOrderRepository(setupOrderTestDB(t))

		_, err := repo.FindByID(ctx, uuid.New())
		require.Error(t, err)
		assert.Equal(t, shared.CodeNotFound, shared.ErrorCode(err))
	})
}

func TestGormOrderRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("saves header fields without touching lines", func(t *testing.T) {
		db := setupOrderTestDB(t)
		repo := NewGormOrderRepository(db)

		o := newOrderWithLine(t, "ORD00003", uuid.New())
		require.NoError(t, repo.CreateWithLines(ctx, o))

		o.Status = order.StatusConfirmed
		o.Lines[0].Quantity = 999 // must not be persisted
		require.NoError(t, repo.Update(ctx, o))

		loaded, err := repo.FindByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, order.StatusConfirmed, loaded.Status)
		require.Len(t, loaded.Lines, 1)
		assert.Equal(t, 5, loaded.Lines[0].Quantity)
	})
}

func TestGormOrderRepository_FindManaged(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, db *gorm.DB, code string, status order.Status, productID uuid.UUID) *order.Order {
		t.Helper()
		repo := NewGormOrderRepository(db)
		o := newOrderWithLine(t, code, productID)
		require.NoError(t, repo.CreateWithLines(ctx, o))
		if status != order.StatusChecking {
			o.Status = status
			require.NoError(t, repo.Update(ctx, o))
		}
		return o
	}

	t.Run("exact status narrows the page and the count", func(t *testing.T) {
		db := setupOrderTestDB(t)
		product := newStoredProduct(t, db, "Soap", 40)
		seed(t, db, "ORD00001", order.StatusChecking, product.ID)
		seed(t, db, "ORD00002", order.StatusConfirmed, product.ID)
		seed(t, db, "ORD00003", order.StatusConfirmed, product.ID)

		status := order.StatusConfirmed
		got, total, err := NewGormOrderRepository(db).FindManaged(ctx, order.ManagementFilter{Status: &status}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, got, 2)
		for _, o := range got {
			assert.Equal(t, order.StatusConfirmed, o.Status)
		}
	})

	t.Run("excluded statuses drop matching orders", func(t *testing.T) {
		db := setupOrderTestDB(t)
		product := newStoredProduct(t, db, "Soap", 40)
		seed(t, db, "ORD00001", order.StatusCancelled, product.ID)
		kept := seed(t, db, "ORD00002", order.StatusChecking, product.ID)

		got, total, err := NewGormOrderRepository(db).FindManaged(ctx, order.ManagementFilter{
			ExcludedStatuses: []order.Status{order.StatusCancelled, order.StatusRefunded},
		}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, got, 1)
		assert.Equal(t, kept.ID, got[0].ID)
	})

	t.Run("expands lines with their product", func(t *testing.T) {
		db := setupOrderTestDB(t)
		product := newStoredProduct(t, db, "Soap", 40)
		seed(t, db, "ORD00001", order.StatusChecking, product.ID)

		got, _, err := NewGormOrderRepository(db).FindManaged(ctx, order.ManagementFilter{}, 1, 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Len(t, got[0].Lines, 1)
		require.NotNil(t, got[0].Lines[0].Product)
		assert.Equal(t, "Soap", got[0].Lines[0].Product.Name)
	})

	t.Run("counts per status over the selected ids", func(t *testing.T) {
		db := setupOrderTestDB(t)
		product := newStoredProduct(t, db, "Soap", 40)
		a := seed(t, db, "ORD00001", order.StatusChecking, product.ID)
		b := seed(t, db, "ORD00002", order.StatusConfirmed, product.ID)
		c := seed(t, db, "ORD00003", order.StatusConfirmed, product.ID)
		seed(t, db, "ORD00004", order.StatusDelivered, product.ID) // outside the id set

		counts, err := NewGormOrderRepository(db).CountByStatus(ctx, []uuid.UUID{a.ID, b.ID, c.ID}, order.ManagementFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), counts[order.StatusChecking])
		assert.Equal(t, int64(2), counts[order.StatusConfirmed])
		_, present := counts[order.StatusDelivered]
		assert.False(t, present)
	})

	t.Run("stock figures are distinct per product", func(t *testing.T) {
		db := setupOrderTestDB(t)
		soap := newStoredProduct(t, db, "Soap", 40)
		tea := newStoredProduct(t, db, "Tea", 7)
		a := seed(t, db, "ORD00001", order.StatusChecking, soap.ID)
		b := seed(t, db, "ORD00002", order.StatusChecking, soap.ID)
		c := seed(t, db, "ORD00003", order.StatusChecking, tea.ID)

		stocks, err := NewGormOrderRepository(db).StockOnHand(ctx, []uuid.UUID{a.ID, b.ID, c.ID})
		require.NoError(t, err)
		require.Len(t, stocks, 2)
		byProduct := map[uuid.UUID]int{}
		for _, s := range stocks {
			byProduct[s.ProductID] = s.InStock
		}
		assert.Equal(t, 40, byProduct[soap.ID])
		assert.Equal(t, 7, byProduct[tea.ID])
	})
}
