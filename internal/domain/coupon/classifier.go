package coupon

import "time"

// Bucket is the derived display state of a coupon. Expiry is never written
// back to storage; it is computed from the offer's redemption deadline at
// read time.
type Bucket string

const (
	BucketAvailable Bucket = "available"
	BucketRedeemed  Bucket = "redeemed"
	BucketExpired   Bucket = "expired"
)

// ClassifyAt places a coupon in exactly one bucket. Redeemed coupons stay
// redeemed regardless of the deadline; an available coupon expires once the
// redemption deadline date is behind asOf. A nil deadline never expires.
// Deadlines are calendar dates, so both sides are compared as dates.
func ClassifyAt(status Status, redeemBy *time.Time, asOf time.Time) Bucket {
	if status == StatusRedeemed {
		return BucketRedeemed
	}
	if redeemBy != nil && toDate(*redeemBy).Before(toDate(asOf)) {
		return BucketExpired
	}
	return BucketAvailable
}

func toDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
