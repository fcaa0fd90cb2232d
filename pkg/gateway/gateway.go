// Package gateway isolates the rest of the system from the payment
// provider's request and response shapes.
package gateway

import (
	"context"
	"fmt"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Outcome is the resolved state of a gateway transaction. A transaction
// with no confirmed outcome yet is OutcomePending, which is a normal,
// non-exceptional result of verification.
type Outcome string

const (
	OutcomePaid    Outcome = "PAID"
	OutcomeFailed  Outcome = "FAILED"
	OutcomePending Outcome = "PENDING"
)

// InitRequest carries everything the provider needs to open a checkout
// session. Email is mandatory; phone is optional and sanitized before use.
type InitRequest struct {
	Email       openapi_types.Email
	FirstName   string
	LastName    string
	PhoneNumber string
	Amount      int64
	TxRef       string
	ReturnURL   string
}

// InitResult is the successful outcome of initiating a checkout session.
type InitResult struct {
	CheckoutURL string
	TxRef       string
}

// Gateway defines the two operations this core needs from the payment
// provider. Verify is idempotent and safe to call any number of times.
type Gateway interface {
	// Initiate opens an external checkout session. It fails with a
	// *ValidationError before any network call when the request is
	// malformed, and with a *InitError carrying the provider's message
	// verbatim when the provider rejects the initiation.
	Initiate(ctx context.Context, req *InitRequest) (*InitResult, error)

	// Verify resolves a transaction reference against the provider.
	// A still-pending transaction returns OutcomePending with a nil error;
	// only transport or provider failures produce an error.
	Verify(ctx context.Context, txRef string) (Outcome, error)
}

// ValidationError reports a malformed initiation request, detected before
// any network call. It is never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InitError reports a provider-side rejection of a checkout initiation.
// Message carries the provider's error verbatim for display to the payer.
type InitError struct {
	Message string
}

func (e *InitError) Error() string {
	return e.Message
}

// NewTxRef builds the globally unique transaction reference for one
// checkout attempt: wedding-{weddingID}-payment-{installmentID}-{millis}.
func NewTxRef(weddingID, installmentID string) string {
	return fmt.Sprintf("wedding-%s-payment-%s-%d", weddingID, installmentID, time.Now().UnixMilli())
}
