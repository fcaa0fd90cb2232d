package pricing

import (
	"testing"

	"github.com/elegantevents/wedding-finance/pkg/models"
	"github.com/stretchr/testify/assert"
)

func accepted(id, serviceID string, price int64) models.Booking {
	return models.Booking{
		Id:        id,
		ServiceId: serviceID,
		Status:    models.BookingAccepted,
		Service:   &models.Service{Id: serviceID, Price: price},
	}
}

func TestServicesSubtotal(t *testing.T) {
	t.Run("Only Accepted Bookings Count", func(t *testing.T) {
		bookings := []models.Booking{
			accepted("b1", "svc1", 50000),
			{Id: "b2", ServiceId: "svc2", Status: models.BookingPending, Service: &models.Service{Id: "svc2", Price: 30000}},
			{Id: "b3", ServiceId: "svc3", Status: models.BookingRejected, Service: &models.Service{Id: "svc3", Price: 20000}},
		}

		assert.Equal(t, int64(50000), ServicesSubtotal(bookings))
	})

	t.Run("Duplicate Service Counted Once", func(t *testing.T) {
		bookings := []models.Booking{
			accepted("b1", "svc1", 50000),
			accepted("b2", "svc1", 50000),
			accepted("b3", "svc1", 50000),
			accepted("b4", "svc2", 25000),
		}

		assert.Equal(t, int64(75000), ServicesSubtotal(bookings))
	})

	t.Run("First Seen Wins For Duplicates", func(t *testing.T) {
		bookings := []models.Booking{
			accepted("b1", "svc1", 50000),
			accepted("b2", "svc1", 99999),
		}

		assert.Equal(t, int64(50000), ServicesSubtotal(bookings))
	})

	t.Run("Missing Price Counts As Zero", func(t *testing.T) {
		bookings := []models.Booking{
			{Id: "b1", ServiceId: "svc1", Status: models.BookingAccepted, Service: nil},
			accepted("b2", "svc2", 40000),
		}

		assert.Equal(t, int64(40000), ServicesSubtotal(bookings))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, int64(0), ServicesSubtotal(nil))
	})
}

func TestTotalCost(t *testing.T) {
	// One accepted booking at 50,000 plus the fixed charge.
	bookings := []models.Booking{accepted("b1", "svc1", 50000)}

	assert.Equal(t, int64(60000), TotalCost(ServicesSubtotal(bookings)))

	// No bookings at all still carries the service charge.
	assert.Equal(t, ServiceCharge, TotalCost(0))
}

func TestPaidAmountAndRemaining(t *testing.T) {
	installments := []models.PaymentInstallment{
		{Id: "p1", Amount: 60000, Status: models.InstallmentPending},
	}

	assert.Equal(t, int64(0), PaidAmount(installments))
	assert.Equal(t, int64(60000), RemainingBalance(60000, PaidAmount(installments)))

	installments[0].Status = models.InstallmentPaid

	assert.Equal(t, int64(60000), PaidAmount(installments))
	assert.Equal(t, int64(0), RemainingBalance(60000, PaidAmount(installments)))
}

func TestRemainingBalanceNeverNegative(t *testing.T) {
	assert.Equal(t, int64(0), RemainingBalance(60000, 70000))
}

func TestBucket(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		paid  int64
		want  models.PaymentBucket
	}{
		{"Nothing Paid", 60000, 0, models.NotPaid},
		{"Fully Paid", 60000, 60000, models.FullyPaid},
		{"Overpaid", 60000, 70000, models.FullyPaid},
		{"Mostly Paid", 60000, 40000, models.MostlyPaid},
		{"Partially Paid", 60000, 20000, models.PartiallyPaid},
		{"Minimal Paid", 60000, 5000, models.MinimalPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bucket(tt.total, tt.paid))
		})
	}
}
