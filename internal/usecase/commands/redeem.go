package commands

import (
	"context"

	"cuponera/internal/domain/coupon"
	"cuponera/internal/infra"
	"cuponera/internal/infra/db"
	"cuponera/internal/pkg/errs"
)

var (
	ErrCouponNotFound        = errs.New("coupon not found")
	ErrCouponAlreadyRedeemed = errs.New("coupon already redeemed")
)

type RedeemCommands interface {
	// Redeem flips an available coupon to redeemed by its code.
	Redeem(ctx context.Context, code string) (*IssuedCoupon, error)
}

type redeemUseCaseImpl struct {
	couponRepo CouponRepository
	txRunner   TxRunner
}

func NewRedeemCommands(couponRepo CouponRepository, txRunner TxRunner) RedeemCommands {
	return &redeemUseCaseImpl{
		couponRepo: couponRepo,
		txRunner:   txRunner,
	}
}

func (u *redeemUseCaseImpl) Redeem(ctx context.Context, code string) (*IssuedCoupon, error) {
	normalizedCode, err := coupon.NewCode(code)
	if err != nil {
		return nil, ErrCouponNotFound
	}

	var record *IssuedCoupon

	err = u.txRunner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		found, err := u.couponRepo.FindByCodeForUpdate(ctx, tx, normalizedCode.String())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCouponNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		couponEntity, err := coupon.NewCoupon(
			found.ID,
			found.OfferID,
			found.CustomerID,
			found.Code,
			found.Status,
			found.PurchasedAt,
			found.Amount,
		)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := couponEntity.Redeem(); err != nil {
			return ErrCouponAlreadyRedeemed
		}

		if err := u.couponRepo.MarkRedeemed(ctx, tx, found.ID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		record = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	record.Status = coupon.StatusRedeemed.String()
	return record, nil
}
