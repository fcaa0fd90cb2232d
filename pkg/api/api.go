// Package api holds the wire types exchanged with clients and workers.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// InstallmentStatus mirrors models.InstallmentStatus on the wire.
type InstallmentStatus string

// AssignmentStatus mirrors models.AssignmentStatus on the wire.
type AssignmentStatus string

// Installment is one payment schedule entry as seen by clients.
type Installment struct {
	Id              string            `json:"id"`
	WeddingId       string            `json:"wedding_id"`
	Amount          int64             `json:"amount"`
	PaidAmount      int64             `json:"paid_amount"`
	Status          InstallmentStatus `json:"status"`
	Sequence        int32             `json:"payment_number"`
	TotalInSchedule int32             `json:"total_payments"`
	Description     string            `json:"description,omitempty"`
	DueDate         *time.Time        `json:"due_date,omitempty"`
	PaidDate        *time.Time        `json:"paid_date,omitempty"`
}

// FinancialSummary is the authoritative cost breakdown for a wedding.
type FinancialSummary struct {
	WeddingId        string         `json:"wedding_id"`
	ServicesSubtotal int64          `json:"services_subtotal"`
	ServiceCharge    int64          `json:"service_charge"`
	TotalCost        int64          `json:"total_cost"`
	PaidAmount       int64          `json:"paid_amount"`
	RemainingBalance int64          `json:"remaining_balance"`
	PaymentStatus    string         `json:"payment_status"`
	Installments     []*Installment `json:"installments"`
}

// EnsureScheduleRequest asks the schedule manager to (re)derive the
// payment schedule for a wedding.
type EnsureScheduleRequest struct {
	PayerId string `json:"payer_id"`
}

// CheckoutRequest initiates an external gateway checkout for one
// installment. Payer identity is resolved by the caller.
type CheckoutRequest struct {
	WeddingId     string              `json:"wedding_id"`
	InstallmentId string              `json:"installment_id"`
	Email         openapi_types.Email `json:"email"`
	FirstName     string              `json:"first_name"`
	LastName      string              `json:"last_name"`
	PhoneNumber   string              `json:"phone_number,omitempty"`
	ReturnUrl     string              `json:"return_url,omitempty"`
}

// CheckoutResponse carries the gateway redirect target. The tx_ref is
// already persisted server-side by the time the client sees it.
type CheckoutResponse struct {
	Success     bool   `json:"success"`
	CheckoutUrl string `json:"checkout_url"`
	TxRef       string `json:"tx_ref"`
}

// VerifyResponse reports the outcome of a verification call. A still
// pending transaction is a success with status PENDING, not an error.
type VerifyResponse struct {
	Success        bool   `json:"success"`
	Status         string `json:"status"`
	PaymentUpdated bool   `json:"payment_updated"`
}

// CompleteWeddingRequest transitions a wedding assignment to COMPLETED
// with the protocol officer's performance feedback.
type CompleteWeddingRequest struct {
	ManagerId string `json:"manager_id"`
	Rating    int32  `json:"rating"`
	Feedback  string `json:"feedback"`
}

// Assignment is the wedding assignment as seen by clients.
type Assignment struct {
	WeddingId        string           `json:"wedding_id"`
	ManagerId        string           `json:"manager_id"`
	ProtocolId       string           `json:"protocol_id,omitempty"`
	Status           AssignmentStatus `json:"status"`
	ProtocolRating   *int32           `json:"protocol_rating,omitempty"`
	ProtocolFeedback string           `json:"protocol_feedback,omitempty"`
}

// Error is the uniform error envelope.
type Error struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// VerificationJob is the queue message driving one verification attempt
// for a checkout attempt. Attempt numbering starts at 1.
type VerificationJob struct {
	TxRef         string `json:"tx_ref"`
	WeddingId     string `json:"wedding_id"`
	InstallmentId string `json:"installment_id"`
	Attempt       int32  `json:"attempt"`
}
