// Package schedule derives and maintains a wedding's payment schedule from
// its authoritative cost. Current policy is a single "pay in full"
// installment; multi-installment schedules from earlier policies are
// consolidated on the next ensure.
package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/elegantevents/wedding-finance/pkg/models"
	"github.com/elegantevents/wedding-finance/pkg/pricing"
	"github.com/elegantevents/wedding-finance/pkg/storage"
	"github.com/google/uuid"
)

// FullPaymentDescription labels the single installment of a consolidated
// schedule.
const FullPaymentDescription = "One-Time Full Payment"

// Manager ensures a wedding's payment schedule matches the current pricing
// policy.
type Manager struct {
	Bookings     storage.BookingReader
	Installments storage.InstallmentStore
}

// NewManager creates a new schedule Manager.
func NewManager(bookings storage.BookingReader, installments storage.InstallmentStore) *Manager {
	return &Manager{Bookings: bookings, Installments: installments}
}

// EnsureSchedule makes sure the wedding has a payment schedule consistent
// with the single-installment policy and returns it.
//
//   - No installments yet and the total exceeds the bare service charge:
//     create one PENDING full-amount installment.
//   - More than one installment (legacy schedule): consolidate into one
//     full-amount installment. Consolidation is atomic; if it fails the
//     stale schedule is returned so reads never go dark.
//   - Exactly one installment: left untouched, even when the cost has since
//     diverged.
//   - Total at or below the service charge (no priced accepted bookings):
//     nothing is created.
func (m *Manager) EnsureSchedule(ctx context.Context, weddingID, payerID string) ([]models.PaymentInstallment, error) {
	bookings, err := m.Bookings.ListBookingsForWedding(ctx, weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for wedding %s: %w", weddingID, err)
	}
	total := pricing.TotalCost(pricing.ServicesSubtotal(bookings))

	existing, err := m.Installments.ListInstallments(ctx, weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list installments for wedding %s: %w", weddingID, err)
	}

	if total <= pricing.ServiceCharge {
		// No accepted priced bookings yet; there is nothing to schedule.
		return existing, nil
	}
	if len(existing) == 1 {
		return existing, nil
	}

	now := time.Now().UTC()
	replacement := []models.PaymentInstallment{{
		Id:              uuid.New().String(),
		WeddingId:       weddingID,
		PayerId:         payerID,
		Amount:          total,
		Status:          models.InstallmentPending,
		Sequence:        1,
		TotalInSchedule: 1,
		Description:     FullPaymentDescription,
		CreatedAt:       now,
		UpdatedAt:       now,
	}}

	schedule, err := m.Installments.ReplaceSchedule(ctx, weddingID, replacement)
	if err != nil {
		if len(existing) > 0 {
			// Consolidation is best-effort; a failed replacement must not
			// hide the schedule the payer already has.
			slog.Warn("schedule consolidation failed, serving stale schedule",
				"weddingId", weddingID, "installments", len(existing), "error", err)
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create payment schedule for wedding %s: %w", weddingID, err)
	}

	slog.Info("payment schedule ensured",
		"weddingId", weddingID, "amount", total, "replaced", len(existing))
	return schedule, nil
}

// Financials returns the wedding's full cost breakdown alongside its
// schedule, ensuring the schedule first.
func (m *Manager) Financials(ctx context.Context, weddingID, payerID string) ([]models.Booking, []models.PaymentInstallment, error) {
	installments, err := m.EnsureSchedule(ctx, weddingID, payerID)
	if err != nil {
		return nil, nil, err
	}
	bookings, err := m.Bookings.ListBookingsForWedding(ctx, weddingID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list bookings for wedding %s: %w", weddingID, err)
	}
	return bookings, installments, nil
}
