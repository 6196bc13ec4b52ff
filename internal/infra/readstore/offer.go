package readstore

import (
	"context"
	"time"

	"cuponera/internal/infra"
	"cuponera/internal/infra/db"
	"cuponera/internal/pkg/pgconv"
	"cuponera/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const offerViewColumns = `
	o.id, o.merchant_id, m.name, m.code, o.category_id, c.name,
	o.title, o.description, o.regular_price, o.discount_price,
	o.starts_on, o.ends_on, o.redeem_by, o.stock_limit`

const listActiveOffersQuery = `
SELECT` + offerViewColumns + `
FROM offers o
JOIN merchants m ON m.id = o.merchant_id
LEFT JOIN categories c ON c.id = o.category_id
WHERE lower(o.approval_state) = 'approved'
  AND (o.starts_on IS NULL OR o.starts_on <= $1)
  AND (o.ends_on IS NULL OR o.ends_on >= $1)
ORDER BY c.name NULLS LAST, o.id`

const getOfferByIDQuery = `
SELECT` + offerViewColumns + `
FROM offers o
JOIN merchants m ON m.id = o.merchant_id
LEFT JOIN categories c ON c.id = o.category_id
WHERE o.id = $1`

const countIssuedCouponsQuery = `SELECT count(*) FROM coupons WHERE offer_id = $1`

type OfferReadStore struct {
	db db.DBTX
}

func NewOfferReadStore(db db.DBTX) *OfferReadStore {
	return &OfferReadStore{db: db}
}

func (r *OfferReadStore) ListActive(ctx context.Context, asOf time.Time) ([]*queries.OfferView, error) {
	rows, err := r.db.Query(ctx, listActiveOffersQuery, pgtype.Date{Time: asOf, Valid: true})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active offers", err)
	}
	defer rows.Close()

	views := []*queries.OfferView{}
	for rows.Next() {
		view, err := scanOfferView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan offer row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read offer rows", err)
	}

	return views, nil
}

func (r *OfferReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OfferView, error) {
	view, err := scanOfferView(r.db.QueryRow(ctx, getOfferByIDQuery, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offer by ID", err)
	}

	return view, nil
}

func (r *OfferReadStore) CountIssued(ctx context.Context, offerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, countIssuedCouponsQuery, offerID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count issued coupons", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOfferView(row rowScanner) (*queries.OfferView, error) {
	var (
		view          queries.OfferView
		categoryID    pgtype.UUID
		categoryName  pgtype.Text
		regularPrice  pgtype.Numeric
		discountPrice pgtype.Numeric
		startsOn      pgtype.Date
		endsOn        pgtype.Date
		redeemBy      pgtype.Date
		stockLimit    pgtype.Int4
	)

	err := row.Scan(
		&view.ID, &view.MerchantID, &view.MerchantName, &view.MerchantCode,
		&categoryID, &categoryName,
		&view.Title, &view.Description, &regularPrice, &discountPrice,
		&startsOn, &endsOn, &redeemBy, &stockLimit,
	)
	if err != nil {
		return nil, err
	}

	view.CategoryID = pgconv.UUIDPtrFromPgtype(categoryID)
	view.CategoryName = pgconv.StringPtrFromPgtype(categoryName)

	if view.RegularPrice, err = pgconv.Float64FromNumeric(regularPrice); err != nil {
		return nil, err
	}
	if view.DiscountPrice, err = pgconv.Float64FromNumeric(discountPrice); err != nil {
		return nil, err
	}

	view.StartsOn = pgconv.DatePtrFromPgtype(startsOn)
	view.EndsOn = pgconv.DatePtrFromPgtype(endsOn)
	view.RedeemBy = pgconv.DatePtrFromPgtype(redeemBy)
	view.StockLimit = pgconv.Int32PtrFromPgtype(stockLimit)

	return &view, nil
}
