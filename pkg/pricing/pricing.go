// Package pricing derives a wedding's authoritative cost from its accepted
// service bookings. All functions are pure and side-effect free.
package pricing

import (
	"github.com/elegantevents/wedding-finance/pkg/models"
)

// ServiceCharge is the fixed platform fee added to every wedding's cost,
// independent of guest count or bookings.
const ServiceCharge int64 = 10000

// ServicesSubtotal sums the service prices of ACCEPTED bookings.
// A service is counted at most once even when multiple booking rows
// reference it (first-seen wins), and a missing price counts as zero.
func ServicesSubtotal(bookings []models.Booking) int64 {
	seen := make(map[string]struct{}, len(bookings))
	var subtotal int64
	for _, b := range bookings {
		if b.Status != models.BookingAccepted {
			continue
		}
		if _, dup := seen[b.ServiceId]; dup {
			continue
		}
		seen[b.ServiceId] = struct{}{}
		if b.Service != nil {
			subtotal += b.Service.Price
		}
	}
	return subtotal
}

// TotalCost is the authoritative total for a wedding: the services subtotal
// plus the unconditional service charge.
func TotalCost(servicesSubtotal int64) int64 {
	return servicesSubtotal + ServiceCharge
}

// PaidAmount sums the paid contribution of each installment.
func PaidAmount(installments []models.PaymentInstallment) int64 {
	var paid int64
	for i := range installments {
		paid += installments[i].PaidAmount()
	}
	return paid
}

// RemainingBalance is the unpaid portion of the total cost, floored at zero.
func RemainingBalance(totalCost, paidAmount int64) int64 {
	if paidAmount >= totalCost {
		return 0
	}
	return totalCost - paidAmount
}

// Bucket classifies how much of the total has been paid. The buckets are
// presentation-oriented and never gate completion.
func Bucket(totalCost, paidAmount int64) models.PaymentBucket {
	if paidAmount == 0 {
		return models.NotPaid
	}
	if paidAmount >= totalCost {
		return models.FullyPaid
	}
	pct := float64(paidAmount) / float64(totalCost) * 100
	switch {
	case pct >= 66:
		return models.MostlyPaid
	case pct >= 33:
		return models.PartiallyPaid
	default:
		return models.MinimalPaid
	}
}
