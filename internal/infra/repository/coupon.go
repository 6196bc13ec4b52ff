package repository

import (
	"context"
	"errors"

	"cuponera/internal/domain/coupon"
	"cuponera/internal/infra"
	"cuponera/internal/infra/db"
	"cuponera/internal/pkg/pgconv"
	"cuponera/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// ON CONFLICT keeps a code collision from aborting the surrounding
// transaction; no row back means the code is already taken.
const insertCouponQuery = `
INSERT INTO coupons (id, offer_id, customer_id, code, status, purchased_at, amount)
VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6)
ON CONFLICT (code) DO NOTHING
RETURNING id`

const countCouponsByOfferQuery = `SELECT count(*) FROM coupons WHERE offer_id = $1`

const getCouponByCodeForUpdateQuery = `
SELECT id, offer_id, customer_id, code, status, purchased_at, amount
FROM coupons
WHERE code = $1
FOR UPDATE`

const markCouponRedeemedQuery = `UPDATE coupons SET status = 'redeemed' WHERE id = $1`

type CouponRepository struct {
	db db.DBTX
}

func NewCouponRepository(db db.DBTX) *CouponRepository {
	return &CouponRepository{db: db}
}

func (r *CouponRepository) Insert(ctx context.Context, tx db.DBTX, c *coupon.Coupon) (uuid.UUID, bool, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertCouponQuery,
		c.OfferID(),
		c.CustomerID(),
		c.Code().String(),
		c.Status().String(),
		pgconv.TimeToPgtype(c.PurchasedAt()),
		pgconv.Float64ToNumeric(c.Amount()),
	).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, false, nil
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrCodeUniqueViolation:
				return uuid.Nil, false, nil
			case pgErrCodeForeignKeyViolation:
				return uuid.Nil, false, infra.WrapRepoErr("coupon references missing row", err, infra.KindForeignKeyViolated)
			}
		}
		return uuid.Nil, false, infra.WrapRepoErr("failed to insert coupon", err)
	}

	return id, true, nil
}

func (r *CouponRepository) CountByOffer(ctx context.Context, tx db.DBTX, offerID uuid.UUID) (int64, error) {
	var count int64
	if err := tx.QueryRow(ctx, countCouponsByOfferQuery, offerID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count coupons for offer", err)
	}
	return count, nil
}

func (r *CouponRepository) FindByCodeForUpdate(ctx context.Context, tx db.DBTX, code string) (*commands.IssuedCoupon, error) {
	var (
		record      commands.IssuedCoupon
		purchasedAt pgtype.Timestamptz
		amount      pgtype.Numeric
	)

	err := tx.QueryRow(ctx, getCouponByCodeForUpdateQuery, code).Scan(
		&record.ID, &record.OfferID, &record.CustomerID,
		&record.Code, &record.Status, &purchasedAt, &amount,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}

	record.PurchasedAt = pgconv.TimeFromPgtype(purchasedAt)
	if record.Amount, err = pgconv.Float64FromNumeric(amount); err != nil {
		return nil, infra.WrapRepoErr("failed to convert coupon amount", err)
	}

	return &record, nil
}

func (r *CouponRepository) MarkRedeemed(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, markCouponRedeemedQuery, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark coupon redeemed", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}
