package request

import (
	"strings"
)

type RedeemCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

func (r RedeemCouponRequest) GetCode() string {
	return strings.TrimSpace(r.Code)
}
