package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode = errors.New("invalid coupon code format")
	ErrInvalidStatus     = errors.New("invalid coupon status")
)

// Merchant short code followed by the 7-digit numeric suffix.
var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{2,13}[0-9]{7}$`)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Status string

const (
	StatusAvailable Status = "available"
	StatusRedeemed  Status = "redeemed"
)

func NewStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusAvailable:
		return StatusAvailable, nil
	case StatusRedeemed:
		return StatusRedeemed, nil
	default:
		return Status(""), ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}
