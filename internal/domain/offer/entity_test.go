//go:build unit

package offer_test

import (
	"testing"
	"time"

	"cuponera/internal/domain/offer"
	"cuponera/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.OfferBuilder)
	errIs  error
}

func TestOffer(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewOfferBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "2x1 Pupusas", actual.Title())
		assert.True(t, actual.ApprovalState().IsApproved())
		assert.Equal(t, 50, actual.DiscountPercent())
	})

	t.Run("price validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero regular price",
				mutate: func(b *builder.OfferBuilder) { b.WithPrices(0, 5) },
				errIs:  offer.ErrInvalidPrice,
			},
			{
				name:   "zero discount price",
				mutate: func(b *builder.OfferBuilder) { b.WithPrices(10, 0) },
				errIs:  offer.ErrInvalidPrice,
			},
			{
				name:   "negative prices",
				mutate: func(b *builder.OfferBuilder) { b.WithPrices(-10, -5) },
				errIs:  offer.ErrInvalidPrice,
			},
			{
				name:   "discount equals regular",
				mutate: func(b *builder.OfferBuilder) { b.WithPrices(10, 10) },
				errIs:  offer.ErrDiscountNotBelow,
			},
			{
				name:   "discount above regular",
				mutate: func(b *builder.OfferBuilder) { b.WithPrices(10, 12) },
				errIs:  offer.ErrDiscountNotBelow,
			},
			{
				name:   "discount just below regular",
				mutate: func(b *builder.OfferBuilder) { b.WithPrices(10, 9.99) },
			},
		})
	})

	t.Run("stock limit validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "negative stock limit",
				mutate: func(b *builder.OfferBuilder) { b.WithStockLimit(-1) },
				errIs:  offer.ErrNegativeStockLimit,
			},
			{
				name:   "zero stock limit",
				mutate: func(b *builder.OfferBuilder) { b.WithStockLimit(0) },
			},
		})
	})

	t.Run("approval state is case insensitive", func(t *testing.T) {
		for _, raw := range []string{"approved", "Approved", "APPROVED", "  approved  "} {
			o, err := builder.NewOfferBuilder().WithApprovalState(raw).BuildDomain()
			require.NoError(t, err)
			assert.True(t, o.ApprovalState().IsApproved(), "raw state %q", raw)
		}

		o, err := builder.NewOfferBuilder().WithApprovalState("pending").BuildDomain()
		require.NoError(t, err)
		assert.False(t, o.ApprovalState().IsApproved())
	})
}

func TestOfferPurchasability(t *testing.T) {
	jan1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	dec31 := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	t.Run("within window", func(t *testing.T) {
		o, err := builder.NewOfferBuilder().WithWindow(&jan1, &dec31).BuildDomain()
		require.NoError(t, err)

		asOf := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
		assert.NoError(t, o.ValidatePurchasableAt(asOf))
		assert.True(t, o.IsCurrentAt(asOf))
	})

	t.Run("before start", func(t *testing.T) {
		o, err := builder.NewOfferBuilder().WithWindow(&jan1, &dec31).BuildDomain()
		require.NoError(t, err)

		asOf := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
		assert.ErrorIs(t, o.ValidatePurchasableAt(asOf), offer.ErrOfferNotYetStarted)
		assert.False(t, o.IsCurrentAt(asOf))
	})

	t.Run("after end", func(t *testing.T) {
		o, err := builder.NewOfferBuilder().WithWindow(&jan1, &dec31).BuildDomain()
		require.NoError(t, err)

		asOf := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
		assert.ErrorIs(t, o.ValidatePurchasableAt(asOf), offer.ErrOfferEnded)
	})

	t.Run("open-ended window", func(t *testing.T) {
		o, err := builder.NewOfferBuilder().WithWindow(nil, nil).BuildDomain()
		require.NoError(t, err)

		assert.NoError(t, o.ValidatePurchasableAt(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)))
		assert.NoError(t, o.ValidatePurchasableAt(time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("not approved", func(t *testing.T) {
		for _, state := range []string{"pending", "rejected", ""} {
			o, err := builder.NewOfferBuilder().WithApprovalState(state).BuildDomain()
			require.NoError(t, err)
			assert.ErrorIs(t, o.ValidatePurchasableAt(jan1), offer.ErrOfferNotApproved, "state %q", state)
		}
	})
}

func TestOfferDiscountPercent(t *testing.T) {
	cases := []struct {
		regular, discount float64
		expected          int
	}{
		{10, 5, 50},
		{10, 7.5, 25},
		{30, 20, 33},
		{3, 1, 67},
		{100, 99.99, 0},
	}

	for _, c := range cases {
		o, err := builder.NewOfferBuilder().WithPrices(c.regular, c.discount).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, c.expected, o.DiscountPercent(), "%v -> %v", c.regular, c.discount)
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewOfferBuilder()
			tc.mutate(b)
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
