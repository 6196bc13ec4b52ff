package repository

import (
	"context"
	"errors"

	"cuponera/internal/infra"
	"cuponera/internal/infra/db"
	"cuponera/internal/pkg/pgconv"
	"cuponera/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const insertPurchaseQuery = `
INSERT INTO purchases (id, offer_id, customer_id, merchant_id, amount, quantity,
                       total, payment_method, status, purchased_at)
VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`

type PurchaseRepository struct {
	db db.DBTX
}

func NewPurchaseRepository(db db.DBTX) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

func (r *PurchaseRepository) Record(ctx context.Context, tx db.DBTX, entry commands.LedgerEntry) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertPurchaseQuery,
		entry.OfferID,
		entry.CustomerID,
		entry.MerchantID,
		pgconv.Float64ToNumeric(entry.Amount),
		entry.Quantity,
		pgconv.Float64ToNumeric(entry.Total),
		entry.PaymentMethod,
		entry.Status,
		pgconv.TimeToPgtype(entry.PurchasedAt),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeForeignKeyViolation {
			return uuid.Nil, infra.WrapRepoErr("purchase references missing row", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to record purchase", err)
	}

	return id, nil
}
