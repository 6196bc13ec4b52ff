//go:build unit || e2e

package builder

import (
	"time"

	domoffer "cuponera/internal/domain/offer"
	"cuponera/internal/usecase/commands"
	"cuponera/internal/usecase/queries"

	"github.com/google/uuid"
)

type OfferBuilder struct {
	ID            uuid.UUID
	MerchantID    uuid.UUID
	MerchantName  string
	MerchantCode  string
	CategoryID    *uuid.UUID
	CategoryName  *string
	Title         string
	Description   string
	RegularPrice  float64
	DiscountPrice float64
	StartsOn      *time.Time
	EndsOn        *time.Time
	RedeemBy      *time.Time
	StockLimit    *int32
	ApprovalState string
}

func NewOfferBuilder() *OfferBuilder {
	categoryID := uuid.New()
	categoryName := "Restaurants"
	startsOn := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	endsOn := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	redeemBy := time.Date(2027, 1, 31, 0, 0, 0, 0, time.UTC)

	return &OfferBuilder{
		ID:            uuid.New(),
		MerchantID:    uuid.New(),
		MerchantName:  "Pupuseria Maria",
		MerchantCode:  "PUPUSAS",
		CategoryID:    &categoryID,
		CategoryName:  &categoryName,
		Title:         "2x1 Pupusas",
		Description:   "Two pupusas for the price of one",
		RegularPrice:  10.00,
		DiscountPrice: 5.00,
		StartsOn:      &startsOn,
		EndsOn:        &endsOn,
		RedeemBy:      &redeemBy,
		StockLimit:    nil,
		ApprovalState: "approved",
	}
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(b)
	return b
}

func (b *OfferBuilder) WithPrices(regular, discount float64) *OfferBuilder {
	b.RegularPrice = regular
	b.DiscountPrice = discount
	return b
}

func (b *OfferBuilder) WithStockLimit(limit int32) *OfferBuilder {
	b.StockLimit = &limit
	return b
}

func (b *OfferBuilder) WithApprovalState(state string) *OfferBuilder {
	b.ApprovalState = state
	return b
}

func (b *OfferBuilder) WithWindow(startsOn, endsOn *time.Time) *OfferBuilder {
	b.StartsOn = startsOn
	b.EndsOn = endsOn
	return b
}

func (b *OfferBuilder) WithCategory(name string) *OfferBuilder {
	id := uuid.New()
	b.CategoryID = &id
	b.CategoryName = &name
	return b
}

func (b *OfferBuilder) WithoutCategory() *OfferBuilder {
	b.CategoryID = nil
	b.CategoryName = nil
	return b
}

func (b *OfferBuilder) BuildDomain() (*domoffer.Offer, error) {
	return domoffer.NewOffer(
		b.ID, b.MerchantID, b.CategoryID, b.Title, b.Description,
		b.RegularPrice, b.DiscountPrice,
		b.StartsOn, b.EndsOn, b.RedeemBy, b.StockLimit, b.ApprovalState,
	)
}

func (b *OfferBuilder) BuildView() *queries.OfferView {
	return &queries.OfferView{
		ID:            b.ID,
		MerchantID:    b.MerchantID,
		MerchantName:  b.MerchantName,
		MerchantCode:  b.MerchantCode,
		CategoryID:    b.CategoryID,
		CategoryName:  b.CategoryName,
		Title:         b.Title,
		Description:   b.Description,
		RegularPrice:  b.RegularPrice,
		DiscountPrice: b.DiscountPrice,
		StartsOn:      b.StartsOn,
		EndsOn:        b.EndsOn,
		RedeemBy:      b.RedeemBy,
		StockLimit:    b.StockLimit,
	}
}

func (b *OfferBuilder) BuildSnapshot() *commands.OfferSnapshot {
	return &commands.OfferSnapshot{
		ID:            b.ID,
		MerchantID:    b.MerchantID,
		MerchantCode:  b.MerchantCode,
		CategoryID:    b.CategoryID,
		Title:         b.Title,
		Description:   b.Description,
		RegularPrice:  b.RegularPrice,
		DiscountPrice: b.DiscountPrice,
		StartsOn:      b.StartsOn,
		EndsOn:        b.EndsOn,
		RedeemBy:      b.RedeemBy,
		StockLimit:    b.StockLimit,
		ApprovalState: b.ApprovalState,
	}
}
