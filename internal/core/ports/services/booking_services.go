package services

import (
	"context"

	"github.com/continental-snooker/snooker_booking_app/internal/core/domain"
	"github.com/continental-snooker/snooker_booking_app/internal/dto"
	"github.com/shopspring/decimal"
)

// BookingSvcFacade defines the operations the booking handlers need.
type BookingSvcFacade interface {
	// SaveBooking validates the request, prices it and appends the
	// resulting record to the ledger. It returns the stored record and
	// the booked duration in hours.
	SaveBooking(ctx context.Context, req dto.CreateBookingRequest) (*domain.Booking, decimal.Decimal, error)
	// ListBookings returns every record, sorted by booking date descending.
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	// GetStats re-reads the ledger and aggregates it.
	GetStats(ctx context.Context) (*domain.BookingStats, error)
	// ExportLedger re-reads the ledger and encodes it for download.
	ExportLedger(ctx context.Context) ([]byte, error)
}
