package queries

import (
	"context"
	"time"

	"cuponera/internal/domain/coupon"
	"cuponera/internal/pkg/clock"
	"cuponera/internal/pkg/errs"

	"github.com/google/uuid"
)

type CouponView struct {
	ID            uuid.UUID  `json:"id"`
	OfferID       uuid.UUID  `json:"offer_id"`
	Code          string     `json:"code"`
	Status        string     `json:"status"`
	PurchasedAt   time.Time  `json:"purchased_at"`
	Amount        float64    `json:"amount"`
	OfferTitle    string     `json:"offer_title"`
	RegularPrice  float64    `json:"regular_price"`
	DiscountPrice float64    `json:"discount_price"`
	RedeemBy      *time.Time `json:"redeem_by,omitempty"`
	MerchantName  string     `json:"merchant_name"`
	MerchantCode  string     `json:"merchant_code"`
}

// ClassifiedCoupons is a partition: every coupon of the customer lands in
// exactly one bucket, each ordered by purchase time descending.
type ClassifiedCoupons struct {
	Available []*CouponView `json:"available"`
	Redeemed  []*CouponView `json:"redeemed"`
	Expired   []*CouponView `json:"expired"`
}

type CouponReadStore interface {
	// ListByCustomer returns the customer's coupons joined with offer and
	// merchant fields, ordered by purchased_at descending.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*CouponView, error)
}

type CouponQueries interface {
	ListClassified(ctx context.Context, customerID uuid.UUID) (*ClassifiedCoupons, error)
}

type couponQueriesImpl struct {
	store CouponReadStore
	clock clock.Clock
}

func NewCouponQueries(store CouponReadStore, clock clock.Clock) CouponQueries {
	return &couponQueriesImpl{store: store, clock: clock}
}

func (q *couponQueriesImpl) ListClassified(ctx context.Context, customerID uuid.UUID) (*ClassifiedCoupons, error) {
	views, err := q.store.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list customer coupons")
	}

	return Classify(views, q.clock.Now()), nil
}

// Classify partitions coupon views as of the given time. Input order is
// preserved within each bucket.
func Classify(views []*CouponView, asOf time.Time) *ClassifiedCoupons {
	result := &ClassifiedCoupons{
		Available: []*CouponView{},
		Redeemed:  []*CouponView{},
		Expired:   []*CouponView{},
	}

	for _, v := range views {
		status, err := coupon.NewStatus(v.Status)
		if err != nil {
			// Unknown stored status is treated as available rather than
			// dropped, keeping the partition property intact.
			status = coupon.StatusAvailable
		}

		switch coupon.ClassifyAt(status, v.RedeemBy, asOf) {
		case coupon.BucketRedeemed:
			result.Redeemed = append(result.Redeemed, v)
		case coupon.BucketExpired:
			result.Expired = append(result.Expired, v)
		default:
			result.Available = append(result.Available, v)
		}
	}

	return result
}
