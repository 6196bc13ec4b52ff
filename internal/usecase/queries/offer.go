package queries

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
)

// UncategorizedBucket collects offers whose category was deleted or never set.
const UncategorizedBucket = "Uncategorized"

// Read models (DTO for read side)
type OfferView struct {
	ID            uuid.UUID  `json:"id"`
	MerchantID    uuid.UUID  `json:"merchant_id"`
	MerchantName  string     `json:"merchant_name"`
	MerchantCode  string     `json:"merchant_code"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	CategoryName  *string    `json:"category_name,omitempty"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	RegularPrice  float64    `json:"regular_price"`
	DiscountPrice float64    `json:"discount_price"`
	StartsOn      *time.Time `json:"starts_on,omitempty"`
	EndsOn        *time.Time `json:"ends_on,omitempty"`
	RedeemBy      *time.Time `json:"redeem_by,omitempty"`
	StockLimit    *int32     `json:"stock_limit,omitempty"`
}

func (v *OfferView) DiscountPercent() int {
	if v.RegularPrice <= 0 {
		return 0
	}
	return int(math.Round((v.RegularPrice - v.DiscountPrice) / v.RegularPrice * 100))
}

type OfferDetailView struct {
	OfferView
	Sold      int64  `json:"sold"`
	Remaining *int64 `json:"remaining,omitempty"` // nil means unlimited
	SoldOut   bool   `json:"sold_out"`
}

type CategoryGroup struct {
	Category string       `json:"category"`
	Offers   []*OfferView `json:"offers"`
}

// CatalogResult distinguishes "no offers" from "the read failed": a degraded
// result carries Complete=false so the caller can render accordingly instead
// of treating the failure as an empty marketplace.
type CatalogResult struct {
	Groups   []CategoryGroup `json:"groups"`
	Complete bool            `json:"complete"`
}

type OfferReadStore interface {
	// ListActive returns approved offers whose validity window contains asOf,
	// ordered by category then by a stable order within each category.
	ListActive(ctx context.Context, asOf time.Time) ([]*OfferView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*OfferView, error)
	CountIssued(ctx context.Context, offerID uuid.UUID) (int64, error)
}

type OfferQueries interface {
	Catalog(ctx context.Context, asOf time.Time) *CatalogResult
	GetDetail(ctx context.Context, id uuid.UUID) (*OfferDetailView, error)
}

type offerQueriesImpl struct {
	store OfferReadStore
}

func NewOfferQueries(store OfferReadStore) OfferQueries {
	return &offerQueriesImpl{store: store}
}

// Catalog never propagates a read failure; display paths degrade to an empty
// result with the Complete flag cleared.
func (q *offerQueriesImpl) Catalog(ctx context.Context, asOf time.Time) *CatalogResult {
	offers, err := q.store.ListActive(ctx, asOf)
	if err != nil {
		slog.Error("catalog read failed, serving degraded result", "error", err.Error())
		return &CatalogResult{Groups: []CategoryGroup{}, Complete: false}
	}

	return &CatalogResult{Groups: GroupByCategory(offers), Complete: true}
}

func (q *offerQueriesImpl) GetDetail(ctx context.Context, id uuid.UUID) (*OfferDetailView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Display-path count; expected to be stale by purchase time. Admission is
	// re-checked inside the purchase transaction.
	sold, err := q.store.CountIssued(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &OfferDetailView{OfferView: *view, Sold: sold}
	if view.StockLimit != nil {
		remaining := int64(*view.StockLimit) - sold
		if remaining < 0 {
			remaining = 0
		}
		detail.Remaining = &remaining
		detail.SoldOut = remaining <= 0
	}

	return detail, nil
}

// GroupByCategory buckets offers by category name, preserving the order in
// which categories first appear.
func GroupByCategory(offers []*OfferView) []CategoryGroup {
	groups := []CategoryGroup{}
	index := map[string]int{}

	for _, o := range offers {
		category := UncategorizedBucket
		if o.CategoryName != nil {
			category = *o.CategoryName
		}

		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, CategoryGroup{Category: category})
		}
		groups[i].Offers = append(groups[i].Offers, o)
	}

	return groups
}
