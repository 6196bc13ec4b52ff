package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount     = errors.New("coupon amount must be positive")
	ErrAlreadyRedeemed   = errors.New("coupon has already been redeemed")
)

// Coupon is a single redeemable unit issued against an offer. Code, offer
// linkage and amount are fixed at purchase time; the only mutation after
// issuance is the one-way available -> redeemed flip.
type Coupon struct {
	id          uuid.UUID
	offerID     uuid.UUID
	customerID  uuid.UUID
	code        Code
	status      Status
	purchasedAt time.Time
	amount      float64
}

func NewCoupon(
	id uuid.UUID,
	offerID, customerID uuid.UUID,
	code string,
	status string,
	purchasedAt time.Time,
	amount float64,
) (*Coupon, error) {
	couponCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	couponStatus, err := NewStatus(status)
	if err != nil {
		return nil, err
	}

	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	return &Coupon{
		id:          id,
		offerID:     offerID,
		customerID:  customerID,
		code:        couponCode,
		status:      couponStatus,
		purchasedAt: purchasedAt,
		amount:      amount,
	}, nil
}

// Redeem flips the coupon to redeemed. The transition is one-way.
func (c *Coupon) Redeem() error {
	if c.status == StatusRedeemed {
		return ErrAlreadyRedeemed
	}
	c.status = StatusRedeemed
	return nil
}

func (c *Coupon) ID() uuid.UUID          { return c.id }
func (c *Coupon) OfferID() uuid.UUID     { return c.offerID }
func (c *Coupon) CustomerID() uuid.UUID  { return c.customerID }
func (c *Coupon) Code() Code             { return c.code }
func (c *Coupon) Status() Status         { return c.status }
func (c *Coupon) PurchasedAt() time.Time { return c.purchasedAt }
func (c *Coupon) Amount() float64        { return c.amount }
