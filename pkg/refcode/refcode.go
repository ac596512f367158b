package refcode

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// Prefixes for the bookable entity families.
const (
	PrefixBooking      = "SL"
	PrefixCorporate    = "CORP"
	PrefixRegistration = "REG"
)

const base36Chars = "0123456789abcdefghijklmnopqrstuvwxyz"

// Generate produces a human-facing reference code of the form
// {PREFIX}-{base36 unix-ms timestamp}-{8 random base36 chars}, uppercased.
// The format is collision-resistant, not collision-free: uniqueness is
// enforced by the database index on the reference column, and callers
// regenerate on a duplicate-key error.
func Generate(prefix string) string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	return strings.ToUpper(fmt.Sprintf("%s-%s-%s%s", prefix, ts, randomSegment(4), randomSegment(4)))
}

func randomSegment(length int) string {
	var sb strings.Builder
	max := big.NewInt(int64(len(base36Chars)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken;
			// fall back to a timestamp-derived digit rather than panic.
			n = big.NewInt(time.Now().UnixNano() % int64(len(base36Chars)))
		}
		sb.WriteByte(base36Chars[n.Int64()])
	}
	return sb.String()
}
