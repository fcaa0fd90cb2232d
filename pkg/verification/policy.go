// Package verification drives the bounded, backed-off verification of
// checkout attempts against the payment gateway.
package verification

import "time"

const (
	// MaxAttempts bounds one verification burst. Running out of attempts
	// exhausts the attempt; it never fails the installment, because the
	// gateway may still confirm out-of-band.
	MaxAttempts = 6

	// BaseDelay is the unit of backoff between attempts.
	BaseDelay = time.Second
)

// Delay returns the scheduling delay before the given attempt (1-based).
// Delays grow strictly: 1×base, 2×base, 3×base, ... so repeated attempts
// tolerate provider-callback latency without hammering the endpoint.
func Delay(attempt int32) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return time.Duration(attempt) * BaseDelay
}
