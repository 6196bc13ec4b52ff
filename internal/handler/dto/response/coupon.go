package response

import (
	"time"

	"cuponera/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponResponse struct {
	ID            uuid.UUID  `json:"id"`
	OfferID       uuid.UUID  `json:"offerId"`
	Code          string     `json:"code"`
	Status        string     `json:"status"`
	PurchasedAt   time.Time  `json:"purchasedAt"`
	Amount        float64    `json:"amount"`
	OfferTitle    string     `json:"offerTitle"`
	RegularPrice  float64    `json:"regularPrice"`
	DiscountPrice float64    `json:"discountPrice"`
	RedeemBy      *time.Time `json:"redeemBy,omitempty"`
	MerchantName  string     `json:"merchantName"`
	MerchantCode  string     `json:"merchantCode"`
}

type ClassifiedCouponsResponse struct {
	Available []*CouponResponse `json:"available"`
	Redeemed  []*CouponResponse `json:"redeemed"`
	Expired   []*CouponResponse `json:"expired"`
}

func FromCouponView(v *queries.CouponView) *CouponResponse {
	return &CouponResponse{
		ID:            v.ID,
		OfferID:       v.OfferID,
		Code:          v.Code,
		Status:        v.Status,
		PurchasedAt:   v.PurchasedAt,
		Amount:        v.Amount,
		OfferTitle:    v.OfferTitle,
		RegularPrice:  v.RegularPrice,
		DiscountPrice: v.DiscountPrice,
		RedeemBy:      v.RedeemBy,
		MerchantName:  v.MerchantName,
		MerchantCode:  v.MerchantCode,
	}
}

func FromClassifiedCoupons(c *queries.ClassifiedCoupons) *ClassifiedCouponsResponse {
	return &ClassifiedCouponsResponse{
		Available: fromCouponViews(c.Available),
		Redeemed:  fromCouponViews(c.Redeemed),
		Expired:   fromCouponViews(c.Expired),
	}
}

func fromCouponViews(views []*queries.CouponView) []*CouponResponse {
	result := make([]*CouponResponse, len(views))
	for i, v := range views {
		result[i] = FromCouponView(v)
	}
	return result
}
