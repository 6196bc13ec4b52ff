package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cuponera/internal/domain/coupon"
	"cuponera/internal/domain/offer"
	"cuponera/internal/infra"
	"cuponera/internal/infra/db"
	"cuponera/internal/pkg/clock"
	"cuponera/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOfferNotFound           = errs.New("offer not found")
	ErrOfferNotPurchasable     = errs.New("offer not purchasable")
	ErrCustomerNotFound        = errs.New("customer not found")
	ErrInvalidQuantity         = errs.New("quantity must be at least 1")
	ErrCodeSpaceExhausted      = errs.New("coupon code space exhausted")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// maxCodeAttempts bounds the regenerate-and-reinsert loop on code collision.
const maxCodeAttempts = 5

// InsufficientInventoryError reports the actual remaining count so the caller
// can clamp the requested quantity and retry.
type InsufficientInventoryError struct {
	Remaining int64
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("insufficient inventory: %d remaining", e.Remaining)
}

type PurchaseResult struct {
	PurchaseID uuid.UUID
	Coupons    []*IssuedCoupon
	Amount     float64
	Total      float64
}

type PurchaseCommands interface {
	Purchase(ctx context.Context, offerID, customerID uuid.UUID, quantity int32) (*PurchaseResult, error)
}

type purchaseUseCaseImpl struct {
	offerRepo  OfferRepository
	couponRepo CouponRepository
	ledger     PurchaseLedger
	codeGen    CodeGenerator
	txRunner   TxRunner
	clock      clock.Clock
}

func NewPurchaseCommands(
	offerRepo OfferRepository,
	couponRepo CouponRepository,
	ledger PurchaseLedger,
	codeGen CodeGenerator,
	txRunner TxRunner,
	clock clock.Clock,
) PurchaseCommands {
	return &purchaseUseCaseImpl{
		offerRepo:  offerRepo,
		couponRepo: couponRepo,
		ledger:     ledger,
		codeGen:    codeGen,
		txRunner:   txRunner,
		clock:      clock,
	}
}

func (u *purchaseUseCaseImpl) Purchase(
	ctx context.Context,
	offerID, customerID uuid.UUID,
	quantity int32,
) (*PurchaseResult, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	offerEntity, snapshot, err := u.loadOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}

	if err := offerEntity.ValidatePurchasableAt(u.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrOfferNotPurchasable)
	}

	return u.executePurchaseTransaction(ctx, offerEntity, snapshot, customerID, quantity)
}

func (u *purchaseUseCaseImpl) loadOffer(ctx context.Context, offerID uuid.UUID) (*offer.Offer, *OfferSnapshot, error) {
	snapshot, err := u.offerRepo.FindByID(ctx, offerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrOfferNotFound
		}
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	offerEntity, err := offer.NewOffer(
		snapshot.ID,
		snapshot.MerchantID,
		snapshot.CategoryID,
		snapshot.Title,
		snapshot.Description,
		snapshot.RegularPrice,
		snapshot.DiscountPrice,
		snapshot.StartsOn,
		snapshot.EndsOn,
		snapshot.RedeemBy,
		snapshot.StockLimit,
		snapshot.ApprovalState,
	)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrDomainValidation)
	}

	return offerEntity, snapshot, nil
}

// executePurchaseTransaction runs the admit-then-issue sequence under a row
// lock on the offer, so two purchases against the same offer can never both
// read a stale issued count. Cross-offer purchases proceed in parallel.
func (u *purchaseUseCaseImpl) executePurchaseTransaction(
	ctx context.Context,
	offerEntity *offer.Offer,
	snapshot *OfferSnapshot,
	customerID uuid.UUID,
	quantity int32,
) (*PurchaseResult, error) {
	var result *PurchaseResult

	err := u.txRunner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := u.offerRepo.LockByID(ctx, tx, offerEntity.ID()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOfferNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		issued, err := u.couponRepo.CountByOffer(ctx, tx, offerEntity.ID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		stock := offerEntity.Remaining(issued)
		if !stock.CanSatisfy(quantity) {
			return &InsufficientInventoryError{Remaining: stock.Reported()}
		}

		purchasedAt := u.clock.Now()

		coupons := make([]*IssuedCoupon, 0, quantity)
		for range quantity {
			issuedCoupon, err := u.issueCoupon(ctx, tx, snapshot, customerID, purchasedAt)
			if err != nil {
				return err
			}
			coupons = append(coupons, issuedCoupon)
		}

		total := snapshot.DiscountPrice * float64(quantity)
		purchaseID, err := u.ledger.Record(ctx, tx, LedgerEntry{
			OfferID:       snapshot.ID,
			CustomerID:    customerID,
			MerchantID:    snapshot.MerchantID,
			Amount:        snapshot.DiscountPrice,
			Quantity:      quantity,
			Total:         total,
			PaymentMethod: "online",
			Status:        "completed",
			PurchasedAt:   purchasedAt,
		})
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrCustomerNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		result = &PurchaseResult{
			PurchaseID: purchaseID,
			Coupons:    coupons,
			Amount:     snapshot.DiscountPrice,
			Total:      total,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// issueCoupon inserts one coupon, regenerating the code on collision. The
// generator cannot guarantee uniqueness (birthday bound over a 10M suffix
// space), so the unique index on the code column is the source of truth and a
// conflict is a transient, retryable condition.
func (u *purchaseUseCaseImpl) issueCoupon(
	ctx context.Context,
	tx db.DBTX,
	snapshot *OfferSnapshot,
	customerID uuid.UUID,
	purchasedAt time.Time,
) (*IssuedCoupon, error) {
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := u.codeGen.Generate(snapshot.MerchantCode)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}

		couponEntity, err := coupon.NewCoupon(
			uuid.Nil,
			snapshot.ID,
			customerID,
			code,
			coupon.StatusAvailable.String(),
			purchasedAt,
			snapshot.DiscountPrice,
		)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}

		id, inserted, err := u.couponRepo.Insert(ctx, tx, couponEntity)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return nil, ErrCustomerNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !inserted {
			slog.Warn("coupon code collision, regenerating",
				"merchant_code", snapshot.MerchantCode,
				"attempt", attempt)
			continue
		}

		return &IssuedCoupon{
			ID:          id,
			OfferID:     snapshot.ID,
			CustomerID:  customerID,
			Code:        code,
			Status:      coupon.StatusAvailable.String(),
			PurchasedAt: purchasedAt,
			Amount:      snapshot.DiscountPrice,
		}, nil
	}

	return nil, ErrCodeSpaceExhausted
}
