package storage

import (
	"context"
	"time"

	"github.com/elegantevents/wedding-finance/pkg/models"
)

// SettlementStore defines the privileged operations that resolve payment
// state after a verified gateway outcome. Every transition is conditional
// so that duplicate deliveries and overlapping verifiers are no-ops.
type SettlementStore interface {
	// SetInstallmentOutcome records a verified gateway outcome (PAID or
	// FAILED) on an installment. PAID is monotonic: an installment already
	// PAID is never demoted, and the call reports false instead of
	// applying the update. It returns true when the update was performed.
	SetInstallmentOutcome(ctx context.Context, weddingID, installmentID string, status models.InstallmentStatus, gatewayTxID string) (bool, error)

	// SettleAttempt marks a checkout attempt SETTLED once its outcome is
	// known. Settling an already settled attempt is a no-op.
	SettleAttempt(ctx context.Context, txRef string) error

	// ExhaustAttempt marks a checkout attempt EXHAUSTED after the bounded
	// verification burst ran out without a confirmed outcome. Exhaustion is
	// not failure: the attempt may still settle later out-of-band.
	ExhaustAttempt(ctx context.Context, txRef string) error

	// GetStaleAttempts retrieves attempts without a confirmed outcome that
	// are older than maxAge, for out-of-band reconciliation.
	GetStaleAttempts(ctx context.Context, maxAge time.Duration) ([]models.CheckoutAttempt, error)
}
