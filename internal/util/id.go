package util

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewTransactionID returns a process-unique transaction id: unix milliseconds
// plus a 5-char random base36 suffix, e.g. "1735689600000-k3x9q". Derived only
// from the clock and crypto/rand, so it needs no locking under concurrent calls.
func NewTransactionID() string {
	suffix := make([]byte, 5)
	max := big.NewInt(int64(len(base36)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken;
			// fall back to a clock-derived digit rather than panic
			suffix[i] = base36[time.Now().UnixNano()%int64(len(base36))]
			continue
		}
		suffix[i] = base36[n.Int64()]
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
}

// TodayDate returns the current date as YYYY-MM-DD. UTC-derived on purpose:
// the stored dates follow the UTC calendar, not the server timezone.
func TodayDate() string {
	return time.Now().UTC().Format("2006-01-02")
}
