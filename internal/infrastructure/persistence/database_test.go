package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ecom/backend/internal/domain/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB opens a GORM connection over a mocked SQL driver
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestGormCodeGenerator_SQL(t *testing.T) {
	t.Run("scans the greatest code for the prefix", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()

		gen := NewGormCodeGenerator(db, map[string]string{order.CodePrefix: "orders"})

		mock.ExpectQuery(`SELECT code FROM "orders" WHERE code LIKE \$1 ORDER BY code DESC LIMIT \$2`).
			WithArgs("ORD%", 1).
			WillReturnRows(sqlmock.NewRows([]string{"code"}).AddRow("ORD00041"))

		code, err := gen.Next(context.Background(), order.CodePrefix)
		require.NoError(t, err)
		assert.Equal(t, "ORD00042", code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty result starts the sequence", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()

		gen := NewGormCodeGenerator(db, map[string]string{order.CodePrefix: "orders"})

		mock.ExpectQuery(`SELECT code FROM "orders"`).
			WithArgs("ORD%", 1).
			WillReturnRows(sqlmock.NewRows([]string{"code"}))

		code, err := gen.Next(context.Background(), order.CodePrefix)
		require.NoError(t, err)
		assert.Equal(t, "ORD00001", code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
