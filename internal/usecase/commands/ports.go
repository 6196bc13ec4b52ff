package commands

import (
	"context"
	"time"

	"cuponera/internal/domain/coupon"
	"cuponera/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type OfferSnapshot struct {
	ID            uuid.UUID
	MerchantID    uuid.UUID
	MerchantCode  string
	CategoryID    *uuid.UUID
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

// IssuedCoupon is a coupon row as committed, with its server-assigned id.
type IssuedCoupon struct {
	ID          uuid.UUID
	OfferID     uuid.UUID
	CustomerID  uuid.UUID
	Code        string
	Status      string
	PurchasedAt time.Time
	Amount      float64
}

type LedgerEntry struct {
	OfferID       uuid.UUID
	CustomerID    uuid.UUID
	MerchantID    uuid.UUID
	Amount        float64
	Quantity      int32
	Total         float64
	PaymentMethod string
	Status        string
	PurchasedAt   time.Time
}

// TxRunner runs fn inside a single transaction, rolling back when fn
// returns an error.
type TxRunner interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}

type OfferRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OfferSnapshot, error)
	// LockByID takes a row lock on the offer for the life of the transaction,
	// serializing purchases per offer.
	LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type CouponRepository interface {
	// Insert returns inserted=false when the code collided with an existing
	// row; the caller regenerates and retries.
	Insert(ctx context.Context, tx db.DBTX, c *coupon.Coupon) (uuid.UUID, bool, error)
	CountByOffer(ctx context.Context, tx db.DBTX, offerID uuid.UUID) (int64, error)
	FindByCodeForUpdate(ctx context.Context, tx db.DBTX, code string) (*IssuedCoupon, error)
	MarkRedeemed(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type PurchaseLedger interface {
	Record(ctx context.Context, tx db.DBTX, entry LedgerEntry) (uuid.UUID, error)
}

type CodeGenerator interface {
	Generate(merchantCode string) (string, error)
}
