package coupon

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

var ErrInvalidMerchantCode = errors.New("invalid merchant code")

var merchantCodeRegex = regexp.MustCompile(`^[A-Z0-9]{2,13}$`)

// codeSuffixRange is the size of the numeric suffix space: 7 zero-padded digits.
const codeSuffixRange = 10_000_000

// RandomGenerator produces merchant-prefixed redemption codes. It does not
// guarantee uniqueness; the coupons table carries a unique index on the code
// column and the purchase path retries on collision.
type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) Generate(merchantCode string) (string, error) {
	merchantCode = strings.TrimSpace(strings.ToUpper(merchantCode))
	if !merchantCodeRegex.MatchString(merchantCode) {
		return "", ErrInvalidMerchantCode
	}

	n, err := rand.Int(rand.Reader, big.NewInt(codeSuffixRange))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%07d", merchantCode, n.Int64()), nil
}
