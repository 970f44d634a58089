package repositories

import (
	"context"

	"github.com/continental-snooker/snooker_booking_app/internal/core/domain"
)

// BookingRepository defines persistence operations for the bookings
// ledger. The ledger is append-only: rows are never updated or removed.
type BookingRepository interface {
	// LoadAll returns every booking in append order. A missing backing
	// file is not an error; it yields an empty slice.
	LoadAll(ctx context.Context) ([]domain.Booking, error)
	// Append adds the booking as the last row and rewrites the backing
	// file, preserving all prior rows unchanged.
	Append(ctx context.Context, booking domain.Booking) error
	// Export encodes the given bookings with the same tabular encoding
	// as the backing file, without touching the on-disk copy.
	Export(bookings []domain.Booking) ([]byte, error)
}
