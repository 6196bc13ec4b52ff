//go:build unit || e2e

package builder

import (
	"time"

	domcoupon "cuponera/internal/domain/coupon"
	"cuponera/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponBuilder struct {
	ID            uuid.UUID
	OfferID       uuid.UUID
	CustomerID    uuid.UUID
	Code          string
	Status        string
	PurchasedAt   time.Time
	Amount        float64
	OfferTitle    string
	RegularPrice  float64
	DiscountPrice float64
	RedeemBy      *time.Time
	MerchantName  string
	MerchantCode  string
}

func NewCouponBuilder() *CouponBuilder {
	redeemBy := time.Date(2027, 1, 31, 0, 0, 0, 0, time.UTC)

	return &CouponBuilder{
		ID:            uuid.New(),
		OfferID:       uuid.New(),
		CustomerID:    uuid.New(),
		Code:          "PUPUSAS1234567",
		Status:        "available",
		PurchasedAt:   time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC),
		Amount:        5.00,
		OfferTitle:    "2x1 Pupusas",
		RegularPrice:  10.00,
		DiscountPrice: 5.00,
		RedeemBy:      &redeemBy,
		MerchantName:  "Pupuseria Maria",
		MerchantCode:  "PUPUSAS",
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) WithStatus(status string) *CouponBuilder {
	b.Status = status
	return b
}

func (b *CouponBuilder) WithCode(code string) *CouponBuilder {
	b.Code = code
	return b
}

func (b *CouponBuilder) WithRedeemBy(t *time.Time) *CouponBuilder {
	b.RedeemBy = t
	return b
}

func (b *CouponBuilder) BuildDomain() (*domcoupon.Coupon, error) {
	return domcoupon.NewCoupon(
		b.ID, b.OfferID, b.CustomerID, b.Code, b.Status, b.PurchasedAt, b.Amount,
	)
}

func (b *CouponBuilder) BuildView() *queries.CouponView {
	return &queries.CouponView{
		ID:            b.ID,
		OfferID:       b.OfferID,
		Code:          b.Code,
		Status:        b.Status,
		PurchasedAt:   b.PurchasedAt,
		Amount:        b.Amount,
		OfferTitle:    b.OfferTitle,
		RegularPrice:  b.RegularPrice,
		DiscountPrice: b.DiscountPrice,
		RedeemBy:      b.RedeemBy,
		MerchantName:  b.MerchantName,
		MerchantCode:  b.MerchantCode,
	}
}
