//go:build unit

package coupon_test

import (
	"testing"

	"cuponera/internal/domain/coupon"
	"cuponera/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoupon(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewCouponBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "PUPUSAS1234567", actual.Code().String())
		assert.Equal(t, coupon.StatusAvailable, actual.Status())
		assert.Equal(t, 5.00, actual.Amount())
	})

	t.Run("code validation", func(t *testing.T) {
		cases := []struct {
			name  string
			code  string
			errIs error
		}{
			{name: "valid short merchant code", code: "AB1234567"},
			{name: "valid long merchant code", code: "ABCDEFGHIJKLM1234567"},
			{name: "lowercase is normalized", code: "pupusas1234567"},
			{name: "surrounding whitespace is trimmed", code: "  PUPUSAS1234567  "},
			{name: "missing numeric suffix", code: "PUPUSAS", errIs: coupon.ErrInvalidCouponCode},
			{name: "suffix too short", code: "AB123456", errIs: coupon.ErrInvalidCouponCode},
			{name: "empty code", code: "", errIs: coupon.ErrInvalidCouponCode},
			{name: "special characters", code: "PUPU-SAS1234567", errIs: coupon.ErrInvalidCouponCode},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				actual, err := builder.NewCouponBuilder().WithCode(tc.code).BuildDomain()
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
					assert.Nil(t, actual)
					return
				}
				require.NoError(t, err)
				require.NotNil(t, actual)
			})
		}
	})

	t.Run("status validation", func(t *testing.T) {
		_, err := builder.NewCouponBuilder().WithStatus("expired").BuildDomain()
		assert.ErrorIs(t, err, coupon.ErrInvalidStatus)

		c, err := builder.NewCouponBuilder().WithStatus("Redeemed").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, coupon.StatusRedeemed, c.Status())
	})

	t.Run("amount validation", func(t *testing.T) {
		_, err := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) { b.Amount = 0 }).BuildDomain()
		assert.ErrorIs(t, err, coupon.ErrInvalidAmount)

		_, err = builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) { b.Amount = -1 }).BuildDomain()
		assert.ErrorIs(t, err, coupon.ErrInvalidAmount)
	})
}

func TestCouponRedeem(t *testing.T) {
	t.Run("redeem flips status once", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, c.Redeem())
		assert.Equal(t, coupon.StatusRedeemed, c.Status())

		assert.ErrorIs(t, c.Redeem(), coupon.ErrAlreadyRedeemed)
		assert.Equal(t, coupon.StatusRedeemed, c.Status())
	})

	t.Run("already redeemed coupon cannot be redeemed", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithStatus("redeemed").BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, c.Redeem(), coupon.ErrAlreadyRedeemed)
	})
}
