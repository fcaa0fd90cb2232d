package storage

import (
	"context"

	"github.com/elegantevents/wedding-finance/pkg/models"
)

// AttemptStore defines the interface for recording gateway checkout
// attempts. Attempts are keyed by their transaction reference and must be
// durable before the payer is redirected to the external checkout page.
type AttemptStore interface {
	// CreateAttempt persists a new checkout attempt. The tx_ref must be
	// unique; a duplicate reference is an error.
	CreateAttempt(ctx context.Context, attempt *models.CheckoutAttempt) error

	// GetAttempt retrieves a checkout attempt by its transaction reference.
	GetAttempt(ctx context.Context, txRef string) (*models.CheckoutAttempt, error)
}
