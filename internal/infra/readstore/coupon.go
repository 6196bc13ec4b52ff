package readstore

import (
	"context"

	"cuponera/internal/infra"
	"cuponera/internal/infra/db"
	"cuponera/internal/pkg/pgconv"
	"cuponera/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const listCouponsByCustomerQuery = `
SELECT
	cp.id, cp.offer_id, cp.code, cp.status, cp.purchased_at, cp.amount,
	o.title, o.regular_price, o.discount_price, o.redeem_by,
	m.name, m.code
FROM coupons cp
JOIN offers o ON o.id = cp.offer_id
JOIN merchants m ON m.id = o.merchant_id
WHERE cp.customer_id = $1
ORDER BY cp.purchased_at DESC`

type CouponReadStore struct {
	db db.DBTX
}

func NewCouponReadStore(db db.DBTX) *CouponReadStore {
	return &CouponReadStore{db: db}
}

func (r *CouponReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.CouponView, error) {
	rows, err := r.db.Query(ctx, listCouponsByCustomerQuery, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customer coupons", err)
	}
	defer rows.Close()

	views := []*queries.CouponView{}
	for rows.Next() {
		var (
			view          queries.CouponView
			purchasedAt   pgtype.Timestamptz
			amount        pgtype.Numeric
			regularPrice  pgtype.Numeric
			discountPrice pgtype.Numeric
			redeemBy      pgtype.Date
		)

		err := rows.Scan(
			&view.ID, &view.OfferID, &view.Code, &view.Status, &purchasedAt, &amount,
			&view.OfferTitle, &regularPrice, &discountPrice, &redeemBy,
			&view.MerchantName, &view.MerchantCode,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon row", err)
		}

		view.PurchasedAt = pgconv.TimeFromPgtype(purchasedAt)
		if view.Amount, err = pgconv.Float64FromNumeric(amount); err != nil {
			return nil, infra.WrapRepoErr("failed to convert coupon amount", err)
		}
		if view.RegularPrice, err = pgconv.Float64FromNumeric(regularPrice); err != nil {
			return nil, infra.WrapRepoErr("failed to convert regular price", err)
		}
		if view.DiscountPrice, err = pgconv.Float64FromNumeric(discountPrice); err != nil {
			return nil, infra.WrapRepoErr("failed to convert discount price", err)
		}
		view.RedeemBy = pgconv.DatePtrFromPgtype(redeemBy)

		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read coupon rows", err)
	}

	return views, nil
}
