package response

import (
	"time"

	"cuponera/internal/usecase/commands"

	"github.com/google/uuid"
)

type IssuedCouponResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Status      string    `json:"status"`
	PurchasedAt time.Time `json:"purchasedAt"`
	Amount      float64   `json:"amount"`
}

type PurchaseResponse struct {
	PurchaseID uuid.UUID               `json:"purchaseId"`
	Coupons    []*IssuedCouponResponse `json:"coupons"`
	Amount     float64                 `json:"amount"`
	Total      float64                 `json:"total"`
}

type RedeemResponse struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	Status     string    `json:"status"`
	RedeemedAt time.Time `json:"redeemedAt"`
}

func FromPurchaseResult(result *commands.PurchaseResult) *PurchaseResponse {
	coupons := make([]*IssuedCouponResponse, len(result.Coupons))
	for i, c := range result.Coupons {
		coupons[i] = &IssuedCouponResponse{
			ID:          c.ID,
			Code:        c.Code,
			Status:      c.Status,
			PurchasedAt: c.PurchasedAt,
			Amount:      c.Amount,
		}
	}
	return &PurchaseResponse{
		PurchaseID: result.PurchaseID,
		Coupons:    coupons,
		Amount:     result.Amount,
		Total:      result.Total,
	}
}

func FromRedeemedCoupon(c *commands.IssuedCoupon, redeemedAt time.Time) *RedeemResponse {
	return &RedeemResponse{
		ID:         c.ID,
		Code:       c.Code,
		Status:     c.Status,
		RedeemedAt: redeemedAt,
	}
}
