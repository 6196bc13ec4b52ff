package request

import (
	"github.com/google/uuid"
)

type CreatePurchaseRequest struct {
	OfferID  uuid.UUID `json:"offer_id" binding:"required"`
	Quantity *int32    `json:"quantity,omitempty"`
}

// GetQuantity defaults a missing quantity to a single coupon.
func (r CreatePurchaseRequest) GetQuantity() int32 {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}
