package importing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImport_MergeLine(t *testing.T) {
	im, err := NewImport("IPC00001", uuid.New(), decimal.NewFromInt(500))
	require.NoError(t, err)

	productA := uuid.New()
	productB := uuid.New()

	_, err = im.AddLine(productA, 10, decimal.NewFromInt(20))
	require.NoError(t, err)

	t.Run("matching product id mutates the existing line in place", func(t *testing.T) {
		line, err := im.MergeLine(productA, 15, decimal.NewFromInt(18))
		require.NoError(t, err)
		assert.Len(t, im.Lines, 1)
		assert.Equal(t, 15, line.Quantity)
		assert.True(t, decimal.NewFromInt(18).Equal(line.Price))
		assert.Equal(t, im.Lines[0].ID, line.ID)
	})

	t.Run("unmatched product id appends a new line", func(t *testing.T) {
		line, err := im.MergeLine(productB, 5, decimal.NewFromInt(40))
		require.NoError(t, err)
		assert.Len(t, im.Lines, 2)
		assert.Equal(t, productB, line.ProductID)
		assert.Equal(t, im.ID, line.ImportID)
	})

	t.Run("invalid entry is rejected", func(t *testing.T) {
		_, err := im.MergeLine(uuid.Nil, 5, decimal.NewFromInt(40))
		require.Error(t, err)
		assert.Len(t, im.Lines, 2)
	})
}

func TestNewImport(t *testing.T) {
	t.Run("rejects empty employee", func(t *testing.T) {
		_, err := NewImport("IPC00001", uuid.Nil, decimal.Zero)
		require.Error(t, err)
	})

	t.Run("creates header with generated id", func(t *testing.T) {
		im, err := NewImport("IPC00001", uuid.New(), decimal.Zero)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, im.ID)
		assert.Equal(t, "IPC00001", im.Code)
	})
}
