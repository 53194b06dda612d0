package persistence

import (
	"context"
	"testing"

	"github.com/ecom/backend/internal/domain/importing"
	"github.com/ecom/backend/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCodeGeneratorTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&order.Order{}, &order.Line{}, &importing.Import{}, &importing.Line{})
	require.NoError(t, err)

	return db
}

func newTestGenerator(db *gorm.DB) *GormCodeGenerator {
	return NewGormCodeGenerator(db, map[string]string{
		order.CodePrefix:     order.Order{}.TableName(),
		importing.CodePrefix: importing.Import{}.TableName(),
	})
}

func seedOrder(t *testing.T, db *gorm.DB, code string) {
	t.Helper()
	o, err := order.NewOrder(code, uuid.New(), uuid.New(), decimal.NewFromInt(100), order.PaymentMethodCOD, order.PaymentStatusUnpaid)
	require.NoError(t, err)
	require.NoError(t, db.Create(o).Error)
}

func TestGormCodeGenerator_Next(t *testing.T) {
	ctx := context.Background()

	t.Run("empty table starts the sequence at 00001", func(t *testing.T) {
		gen := newTestGenerator(setupCodeGeneratorTestDB(t))

		code, err := gen.Next(ctx, order.CodePrefix)
		require.NoError(t, err)
		assert.Equal(t, "ORD00001", code)
	})

	t.Run("continues from the greatest stored code", func(t *testing.T) {
		db := setupCodeGeneratorTestDB(t)
		seedOrder(t, db, "ORD00001")
		seedOrder(t, db, "ORD00007")
		seedOrder(t, db, "ORD00003")

		code, err := newTestGenerator(db).Next(ctx, order.CodePrefix)
		require.NoError(t, err)
		assert.Equal(t, "ORD00008", code)
	})

	t.Run("keeps five-digit zero padding", func(t *testing.T) {
		db := setupCodeGeneratorTestDB(t)
		seedOrder(t, db, "ORD00041")

		code, err := newTestGenerator(db).Next(ctx, order.CodePrefix)
		require.NoError(t, err)
		assert.Equal(t, "ORD00042", code)
	})

	t.Run("prefixes draw from independent sequences", func(t *testing.T) {
		db := setupCodeGeneratorTestDB(t)
		seedOrder(t, db, "ORD00009")
		gen := newTestGenerator(db)

		code, err := gen.Next(ctx, importing.CodePrefix)
		require.NoError(t, err)
		assert.Equal(t, "IPC00001", code)
	})

	t.Run("unregistered prefix is rejected", func(t *testing.T) {
		gen := newTestGenerator(setupCodeGeneratorTestDB(t))

		_, err := gen.Next(ctx, "XYZ")
		require.Error(t, err)
	})
}
