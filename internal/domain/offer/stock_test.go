//go:build unit

package offer_test

import (
	"testing"

	"cuponera/internal/domain/offer"
	"cuponera/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStock(t *testing.T) {
	t.Run("unlimited stock never blocks", func(t *testing.T) {
		s := offer.UnlimitedStock()

		assert.True(t, s.Unlimited())
		assert.False(t, s.SoldOut())
		assert.True(t, s.CanSatisfy(1))
		assert.True(t, s.CanSatisfy(1_000_000))
	})

	t.Run("limited stock admission", func(t *testing.T) {
		s := offer.LimitedStock(3)

		assert.False(t, s.Unlimited())
		assert.False(t, s.SoldOut())
		assert.True(t, s.CanSatisfy(3))
		assert.False(t, s.CanSatisfy(4))
	})

	t.Run("sold out at zero", func(t *testing.T) {
		s := offer.LimitedStock(0)

		assert.True(t, s.SoldOut())
		assert.False(t, s.CanSatisfy(1))
		assert.Equal(t, int64(0), s.Reported())
	})

	t.Run("negative remaining reports zero", func(t *testing.T) {
		s := offer.LimitedStock(-2)

		assert.True(t, s.SoldOut())
		assert.Equal(t, int64(-2), s.Remaining())
		assert.Equal(t, int64(0), s.Reported())
		assert.False(t, s.CanSatisfy(1))
	})
}

func TestOfferRemaining(t *testing.T) {
	t.Run("no stock limit yields unlimited stock", func(t *testing.T) {
		o, err := builder.NewOfferBuilder().BuildDomain()
		require.NoError(t, err)

		s := o.Remaining(9999)
		assert.True(t, s.Unlimited())
		assert.True(t, s.CanSatisfy(5))
	})

	t.Run("limit minus issued", func(t *testing.T) {
		o, err := builder.NewOfferBuilder().WithStockLimit(10).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, int64(7), o.Remaining(3).Remaining())
		assert.Equal(t, int64(0), o.Remaining(10).Remaining())
		assert.True(t, o.Remaining(10).SoldOut())
	})

	t.Run("oversold offer has negative raw remaining", func(t *testing.T) {
		o, err := builder.NewOfferBuilder().WithStockLimit(5).BuildDomain()
		require.NoError(t, err)

		s := o.Remaining(8)
		assert.Equal(t, int64(-3), s.Remaining())
		assert.Equal(t, int64(0), s.Reported())
	})
}
