package response

import (
	"time"

	"cuponera/internal/usecase/queries"

	"github.com/google/uuid"
)

type OfferResponse struct {
	ID              uuid.UUID  `json:"id"`
	MerchantID      uuid.UUID  `json:"merchantId"`
	MerchantName    string     `json:"merchantName"`
	MerchantCode    string     `json:"merchantCode"`
	CategoryID      *uuid.UUID `json:"categoryId,omitempty"`
	CategoryName    *string    `json:"categoryName,omitempty"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	RegularPrice    float64    `json:"regularPrice"`
	DiscountPrice   float64    `json:"discountPrice"`
	DiscountPercent int        `json:"discountPercent"`
	StartsOn        *time.Time `json:"startsOn,omitempty"`
	EndsOn          *time.Time `json:"endsOn,omitempty"`
	RedeemBy        *time.Time `json:"redeemBy,omitempty"`
	StockLimit      *int32     `json:"stockLimit,omitempty"`
}

type OfferDetailResponse struct {
	OfferResponse
	Sold      int64  `json:"sold"`
	Remaining *int64 `json:"remaining,omitempty"`
	SoldOut   bool   `json:"soldOut"`
}

type CategoryGroupResponse struct {
	Category string           `json:"category"`
	Offers   []*OfferResponse `json:"offers"`
}

type CatalogResponse struct {
	Groups   []CategoryGroupResponse `json:"groups"`
	Complete bool                    `json:"complete"`
}

func FromOfferView(v *queries.OfferView) *OfferResponse {
	return &OfferResponse{
		ID:              v.ID,
		MerchantID:      v.MerchantID,
		MerchantName:    v.MerchantName,
		MerchantCode:    v.MerchantCode,
		CategoryID:      v.CategoryID,
		CategoryName:    v.CategoryName,
		Title:           v.Title,
		Description:     v.Description,
		RegularPrice:    v.RegularPrice,
		DiscountPrice:   v.DiscountPrice,
		DiscountPercent: v.DiscountPercent(),
		StartsOn:        v.StartsOn,
		EndsOn:          v.EndsOn,
		RedeemBy:        v.RedeemBy,
		StockLimit:      v.StockLimit,
	}
}

func FromOfferDetailView(v *queries.OfferDetailView) *OfferDetailResponse {
	return &OfferDetailResponse{
		OfferResponse: *FromOfferView(&v.OfferView),
		Sold:          v.Sold,
		Remaining:     v.Remaining,
		SoldOut:       v.SoldOut,
	}
}

func FromCatalogResult(result *queries.CatalogResult) *CatalogResponse {
	groups := make([]CategoryGroupResponse, len(result.Groups))
	for i, g := range result.Groups {
		offers := make([]*OfferResponse, len(g.Offers))
		for j, o := range g.Offers {
			offers[j] = FromOfferView(o)
		}
		groups[i] = CategoryGroupResponse{Category: g.Category, Offers: offers}
	}
	return &CatalogResponse{Groups: groups, Complete: result.Complete}
}
