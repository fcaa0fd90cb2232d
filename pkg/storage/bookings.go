package storage

import (
	"context"

	"github.com/elegantevents/wedding-finance/pkg/models"
)

// BookingReader defines the interface for reading a wedding's service
// bookings. Bookings are owned by the booking subsystem; this core only
// reads them to derive cost.
type BookingReader interface {
	// ListBookingsForWedding retrieves all bookings for a wedding, any
	// status, with their linked service snapshot.
	ListBookingsForWedding(ctx context.Context, weddingID string) ([]models.Booking, error)
}
