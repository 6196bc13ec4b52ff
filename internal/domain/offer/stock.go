package offer

// Stock is the remaining inventory for an offer. An unlimited stock never
// blocks a purchase. A limited stock keeps the raw limit-minus-issued value;
// it can go negative if a purchase raced past the limit, and admission
// decisions must see that raw value rather than a floored one.
type Stock struct {
	limited   bool
	remaining int64
}

func UnlimitedStock() Stock {
	return Stock{limited: false}
}

func LimitedStock(remaining int64) Stock {
	return Stock{limited: true, remaining: remaining}
}

func (s Stock) Unlimited() bool {
	return !s.limited
}

// Remaining returns the raw remaining count. Only meaningful for limited stock.
func (s Stock) Remaining() int64 {
	return s.remaining
}

// Reported floors the remaining count at zero for display.
func (s Stock) Reported() int64 {
	if s.remaining < 0 {
		return 0
	}
	return s.remaining
}

func (s Stock) SoldOut() bool {
	return s.limited && s.remaining <= 0
}

// CanSatisfy reports whether quantity coupons can be issued without
// overselling. Partial fulfillment is never allowed.
func (s Stock) CanSatisfy(quantity int32) bool {
	if !s.limited {
		return true
	}
	return int64(quantity) <= s.remaining
}
