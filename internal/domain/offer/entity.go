package offer

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPrice        = errors.New("prices must be positive")
	ErrDiscountNotBelow    = errors.New("discount price must be below regular price")
	ErrNegativeStockLimit  = errors.New("stock limit cannot be negative")
	ErrOfferNotApproved    = errors.New("offer is not approved")
	ErrOfferNotYetStarted  = errors.New("offer has not started yet")
	ErrOfferEnded          = errors.New("offer has ended")
)

type ApprovalState string

const (
	ApprovalPending  ApprovalState = "pending"
	ApprovalApproved ApprovalState = "approved"
	ApprovalRejected ApprovalState = "rejected"
)

// NewApprovalState normalizes upstream data entry, which is not uniform in case.
func NewApprovalState(s string) ApprovalState {
	return ApprovalState(strings.ToLower(strings.TrimSpace(s)))
}

func (a ApprovalState) IsApproved() bool {
	return strings.EqualFold(string(a), string(ApprovalApproved))
}

type Offer struct {
	id            uuid.UUID
	merchantID    uuid.UUID
	categoryID    *uuid.UUID
	title         string
	description   string
	regularPrice  float64
	discountPrice float64
	startsOn      *time.Time
	endsOn        *time.Time
	redeemBy      *time.Time
	stockLimit    *int32
	approvalState ApprovalState
}

func NewOffer(
	id uuid.UUID,
	merchantID uuid.UUID,
	categoryID *uuid.UUID,
	title, description string,
	regularPrice, discountPrice float64,
	startsOn, endsOn, redeemBy *time.Time,
	stockLimit *int32,
	approvalState string,
) (*Offer, error) {
	if regularPrice <= 0 || discountPrice <= 0 {
		return nil, ErrInvalidPrice
	}
	if discountPrice >= regularPrice {
		return nil, ErrDiscountNotBelow
	}
	if stockLimit != nil && *stockLimit < 0 {
		return nil, ErrNegativeStockLimit
	}

	return &Offer{
		id:            id,
		merchantID:    merchantID,
		categoryID:    categoryID,
		title:         title,
		description:   description,
		regularPrice:  regularPrice,
		discountPrice: discountPrice,
		startsOn:      startsOn,
		endsOn:        endsOn,
		redeemBy:      redeemBy,
		stockLimit:    stockLimit,
		approvalState: NewApprovalState(approvalState),
	}, nil
}

// IsCurrentAt reports whether the validity window contains t.
// Nil bounds are open-ended.
func (o *Offer) IsCurrentAt(t time.Time) bool {
	if o.startsOn != nil && t.Before(*o.startsOn) {
		return false
	}
	if o.endsOn != nil && t.After(*o.endsOn) {
		return false
	}
	return true
}

// ValidatePurchasableAt gates the purchase path; catalog filtering uses the
// same window rules on the read side.
func (o *Offer) ValidatePurchasableAt(t time.Time) error {
	if !o.approvalState.IsApproved() {
		return ErrOfferNotApproved
	}
	if o.startsOn != nil && t.Before(*o.startsOn) {
		return ErrOfferNotYetStarted
	}
	if o.endsOn != nil && t.After(*o.endsOn) {
		return ErrOfferEnded
	}
	return nil
}

// Remaining computes stock from the count of already-issued coupons.
func (o *Offer) Remaining(issued int64) Stock {
	if o.stockLimit == nil {
		return UnlimitedStock()
	}
	return LimitedStock(int64(*o.stockLimit) - issued)
}

func (o *Offer) DiscountPercent() int {
	return int(math.Round((o.regularPrice - o.discountPrice) / o.regularPrice * 100))
}

func (o *Offer) ID() uuid.UUID               { return o.id }
func (o *Offer) MerchantID() uuid.UUID       { return o.merchantID }
func (o *Offer) CategoryID() *uuid.UUID      { return o.categoryID }
func (o *Offer) Title() string               { return o.title }
func (o *Offer) Description() string         { return o.description }
func (o *Offer) RegularPrice() float64       { return o.regularPrice }
func (o *Offer) DiscountPrice() float64      { return o.discountPrice }
func (o *Offer) StartsOn() *time.Time        { return o.startsOn }
func (o *Offer) EndsOn() *time.Time          { return o.endsOn }
func (o *Offer) RedeemBy() *time.Time        { return o.redeemBy }
func (o *Offer) StockLimit() *int32          { return o.stockLimit }
func (o *Offer) ApprovalState() ApprovalState { return o.approvalState }
