package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateOrderNumber returns ORD-YYYYMMDD-HHMMSS-NNNN in UTC.
func GenerateOrderNumber(now time.Time) string {
	now = now.UTC()

	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		n = big.NewInt(now.UnixNano() % 10000)
	}

	return fmt.Sprintf("ORD-%s-%04d", now.Format("20060102-150405"), n.Int64())
}
