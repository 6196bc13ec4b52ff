package repository

import (
	"context"

	"cuponera/internal/infra"
	"cuponera/internal/infra/db"
	"cuponera/internal/pkg/pgconv"
	"cuponera/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const getOfferSnapshotQuery = `
SELECT o.id, o.merchant_id, m.code, o.category_id, o.title, o.description,
       o.regular_price, o.discount_price, o.starts_on, o.ends_on, o.redeem_by,
       o.stock_limit, o.approval_state
FROM offers o
JOIN merchants m ON m.id = o.merchant_id
WHERE o.id = $1`

const lockOfferQuery = `SELECT id FROM offers WHERE id = $1 FOR UPDATE`

type OfferRepository struct {
	db db.DBTX
}

func NewOfferRepository(db db.DBTX) *OfferRepository {
	return &OfferRepository{db: db}
}

func (r *OfferRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.OfferSnapshot, error) {
	var (
		snapshot      commands.OfferSnapshot
		categoryID    pgtype.UUID
		regularPrice  pgtype.Numeric
		discountPrice pgtype.Numeric
		startsOn      pgtype.Date
		endsOn        pgtype.Date
		redeemBy      pgtype.Date
		stockLimit    pgtype.Int4
	)

	err := r.db.QueryRow(ctx, getOfferSnapshotQuery, id).Scan(
		&snapshot.ID, &snapshot.MerchantID, &snapshot.MerchantCode,
		&categoryID, &snapshot.Title, &snapshot.Description,
		&regularPrice, &discountPrice, &startsOn, &endsOn, &redeemBy,
		&stockLimit, &snapshot.ApprovalState,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offer by ID", err)
	}

	snapshot.CategoryID = pgconv.UUIDPtrFromPgtype(categoryID)
	if snapshot.RegularPrice, err = pgconv.Float64FromNumeric(regularPrice); err != nil {
		return nil, infra.WrapRepoErr("failed to convert regular price", err)
	}
	if snapshot.DiscountPrice, err = pgconv.Float64FromNumeric(discountPrice); err != nil {
		return nil, infra.WrapRepoErr("failed to convert discount price", err)
	}
	snapshot.StartsOn = pgconv.DatePtrFromPgtype(startsOn)
	snapshot.EndsOn = pgconv.DatePtrFromPgtype(endsOn)
	snapshot.RedeemBy = pgconv.DatePtrFromPgtype(redeemBy)
	snapshot.StockLimit = pgconv.Int32PtrFromPgtype(stockLimit)

	return &snapshot, nil
}

// LockByID serializes purchases for one offer: the row lock is held until the
// surrounding transaction commits or rolls back.
func (r *OfferRepository) LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	var lockedID uuid.UUID
	if err := tx.QueryRow(ctx, lockOfferQuery, id).Scan(&lockedID); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock offer row", err)
	}
	return nil
}
