package models

import (
	"time"
)

// BookingStatus defines the possible states of a service booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingAccepted  BookingStatus = "ACCEPTED"
	BookingRejected  BookingStatus = "REJECTED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// InstallmentStatus defines the possible states of a payment installment.
type InstallmentStatus string

const (
	InstallmentPending InstallmentStatus = "PENDING"
	InstallmentPaid    InstallmentStatus = "PAID"
	InstallmentFailed  InstallmentStatus = "FAILED"
)

// AttemptStatus defines the possible states of a gateway checkout attempt.
type AttemptStatus string

const (
	AttemptPending   AttemptStatus = "PENDING"
	AttemptSettled   AttemptStatus = "SETTLED"
	AttemptExhausted AttemptStatus = "EXHAUSTED"
)

// TaskStatus defines the possible states of a protocol task.
type TaskStatus string

const (
	TaskPendingAcceptance TaskStatus = "PENDING_ACCEPTANCE"
	TaskAccepted          TaskStatus = "ACCEPTED"
	TaskRejected          TaskStatus = "REJECTED"
	TaskCompleted         TaskStatus = "COMPLETED"
)

// AssignmentStatus defines the possible states of a wedding assignment.
type AssignmentStatus string

const (
	AssignmentActive    AssignmentStatus = "ACTIVE"
	AssignmentCompleted AssignmentStatus = "COMPLETED"
)

// PaymentBucket is the presentation-oriented paid-percentage bucket.
// It carries no gating power over completion.
type PaymentBucket string

const (
	NotPaid       PaymentBucket = "NOT_PAID"
	MinimalPaid   PaymentBucket = "MINIMAL_PAID"
	PartiallyPaid PaymentBucket = "PARTIALLY_PAID"
	MostlyPaid    PaymentBucket = "MOSTLY_PAID"
	FullyPaid     PaymentBucket = "FULLY_PAID"
)

// Wedding is the owning entity for the financial workflow. The budget is
// informational only; authoritative cost is derived from accepted bookings.
type Wedding struct {
	Id         string    `dynamodbav:"id"`
	CoupleId   string    `dynamodbav:"couple_id"`
	GuestCount int32     `dynamodbav:"guest_count"`
	Date       time.Time `dynamodbav:"date"`
	Budget     int64     `dynamodbav:"budget"`
}

// Service is the vendor service referenced by a booking. Price is a
// currency-agnostic amount in whole units.
type Service struct {
	Id       string `dynamodbav:"id"`
	Category string `dynamodbav:"category"`
	Price    int64  `dynamodbav:"price"`
}

// Booking links a wedding to a vendor service. Only ACCEPTED bookings with
// a known, positive service price contribute to the wedding's cost.
type Booking struct {
	Id        string        `dynamodbav:"id"`
	WeddingId string        `dynamodbav:"wedding_id"`
	ServiceId string        `dynamodbav:"service_id"`
	Status    BookingStatus `dynamodbav:"status"`
	Service   *Service      `dynamodbav:"service,omitempty"`
}

// PaymentInstallment is one payable line item of a wedding's payment
// schedule. Current policy produces exactly one "pay in full" entry.
type PaymentInstallment struct {
	Id              string            `dynamodbav:"id"`
	WeddingId       string            `dynamodbav:"wedding_id"`
	PayerId         string            `dynamodbav:"payer_id"`
	Amount          int64             `dynamodbav:"amount"`
	Status          InstallmentStatus `dynamodbav:"status"`
	Sequence        int32             `dynamodbav:"sequence"`
	TotalInSchedule int32             `dynamodbav:"total_in_schedule"`
	Description     string            `dynamodbav:"description"`
	DueDate         *time.Time        `dynamodbav:"due_date,omitempty"`
	PaidDate        *time.Time        `dynamodbav:"paid_date,omitempty"`
	GatewayTxId     string            `dynamodbav:"gateway_tx_id,omitempty"`
	CreatedAt       time.Time         `dynamodbav:"created_at"`
	UpdatedAt       time.Time         `dynamodbav:"updated_at"`
}

// PaidAmount is the amount this installment contributes to the wedding's
// paid total: the full amount once PAID, else 0.
func (p *PaymentInstallment) PaidAmount() int64 {
	if p.Status == InstallmentPaid {
		return p.Amount
	}
	return 0
}

// CheckoutAttempt records one gateway checkout initiation, keyed by its
// client-generated transaction reference. Attempts are persisted before the
// payer is handed the checkout URL, so the workflow survives the external
// redirect, and are keyed per installment so concurrent attempts for
// distinct installments never clobber each other.
type CheckoutAttempt struct {
	TxRef         string        `dynamodbav:"tx_ref"`
	WeddingId     string        `dynamodbav:"wedding_id"`
	InstallmentId string        `dynamodbav:"installment_id"`
	PayerId       string        `dynamodbav:"payer_id"`
	Amount        int64         `dynamodbav:"amount"`
	Status        AttemptStatus `dynamodbav:"status"`
	Attempts      int32         `dynamodbav:"attempts"`
	CheckoutURL   string        `dynamodbav:"checkout_url,omitempty"`
	CreatedAt     time.Time     `dynamodbav:"created_at"`
	UpdatedAt     time.Time     `dynamodbav:"updated_at"`
	TTL           int64         `dynamodbav:"ttl,omitempty"`
}

// Task is a protocol task. Tasks only matter to this core as completion
// gating input: a wedding cannot complete while any task is outstanding.
type Task struct {
	Id         string     `dynamodbav:"id"`
	WeddingId  string     `dynamodbav:"wedding_id"`
	AssigneeId string     `dynamodbav:"assignee_id"`
	Title      string     `dynamodbav:"title"`
	Status     TaskStatus `dynamodbav:"status"`
}

// Outstanding reports whether the task still blocks wedding completion.
func (t *Task) Outstanding() bool {
	return t.Status != TaskCompleted && t.Status != TaskRejected
}

// WeddingAssignment links a wedding to its manager and protocol officer.
// The ACTIVE -> COMPLETED transition is terminal and owned by the
// completion gate.
type WeddingAssignment struct {
	WeddingId        string           `dynamodbav:"wedding_id"`
	CoupleId         string           `dynamodbav:"couple_id"`
	ManagerId        string           `dynamodbav:"manager_id"`
	ProtocolId       string           `dynamodbav:"protocol_id,omitempty"`
	Status           AssignmentStatus `dynamodbav:"status"`
	ProtocolRating   *int32           `dynamodbav:"protocol_rating,omitempty"`
	ProtocolFeedback string           `dynamodbav:"protocol_feedback,omitempty"`
	CreatedAt        time.Time        `dynamodbav:"created_at"`
	UpdatedAt        time.Time        `dynamodbav:"updated_at"`
}
