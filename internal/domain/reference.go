package domain

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const (
	PolicyNumberPrefix = "POL-"
	ClaimNumberPrefix  = "CLM-"

	referenceAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	referenceSuffix   = 3
)

// NewPolicyNumber returns a human-readable policy number such as
// POL-12345678AB3.
func NewPolicyNumber(now time.Time) string {
	return newReference(PolicyNumberPrefix, now)
}

// NewClaimNumber returns a human-readable claim number such as
// CLM-12345678AB3.
func NewClaimNumber(now time.Time) string {
	return newReference(ClaimNumberPrefix, now)
}

// newReference builds prefix + last 8 digits of the millisecond clock +
// 3 random base-36 characters. Uniqueness is enforced by the database; the
// random suffix only makes collisions rare.
func newReference(prefix string, now time.Time) string {
	ms := now.UnixMilli() % 100_000_000

	suffix := make([]byte, referenceSuffix)
	base := big.NewInt(int64(len(referenceAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, base)
		if err != nil {
			panic(fmt.Sprintf("reference: read random: %v", err))
		}
		suffix[i] = referenceAlphabet[n.Int64()]
	}

	return fmt.Sprintf("%s%08d%s", prefix, ms, suffix)
}
