package services

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const trackingAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

const trackingRandLen = 5

// Collision retries before giving up. The random suffix keeps the odds low;
// the unique index on code_suivi is the actual guarantee.
const trackingMaxAttempts = 5

// NewTrackingCode builds a human-copyable code: the current millisecond
// timestamp in base 36, a hyphen, then 5 random base-36 characters, all
// uppercased (e.g. "MB3K2F1X-A9Q4Z").
func NewTrackingCode() (string, error) {
	buf := make([]byte, trackingRandLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = trackingAlphabet[int(b)%len(trackingAlphabet)]
	}

	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	return strings.ToUpper(ts + "-" + string(buf)), nil
}
