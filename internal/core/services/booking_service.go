package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/continental-snooker/snooker_booking_app/internal/apperrors"
	"github.com/continental-snooker/snooker_booking_app/internal/core/domain"
	"github.com/continental-snooker/snooker_booking_app/internal/core/pricing"
	portsrepo "github.com/continental-snooker/snooker_booking_app/internal/core/ports/repositories"
	"github.com/continental-snooker/snooker_booking_app/internal/dto"
	"github.com/shopspring/decimal"
)

// BookingService orchestrates pricing, validation and ledger access.
// It keeps no state of its own; the ledger file is the sole source of
// truth and every read goes back to storage.
type BookingService struct {
	bookingRepo portsrepo.BookingRepository
	rates       domain.RateTable
}

func NewBookingService(bookingRepo portsrepo.BookingRepository, rates domain.RateTable) *BookingService {
	return &BookingService{bookingRepo: bookingRepo, rates: rates}
}

func (s *BookingService) SaveBooking(ctx context.Context, req dto.CreateBookingRequest) (*domain.Booking, decimal.Decimal, error) {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return nil, decimal.Zero, apperrors.ErrEmptyCustomerName
	}

	quote, err := pricing.ComputePrice(s.rates, domain.TableID(req.Table), req.StartTime, req.EndTime)
	if err != nil {
		return nil, decimal.Zero, err
	}

	booking := domain.Booking{
		CustomerName: name,
		Table:        domain.TableID(req.Table),
		// The Time column keeps the raw user-entered strings.
		TimeRange:   fmt.Sprintf("%s - %s", req.StartTime, req.EndTime),
		Price:       quote.Price,
		BookingDate: time.Now().Format(domain.DateLayout),
	}

	if err := s.bookingRepo.Append(ctx, booking); err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to append booking: %w", err)
	}

	return &booking, quote.Hours, nil
}

func (s *BookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	// Stable sort keeps append order within a single date.
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].BookingDate > bookings[j].BookingDate
	})
	if bookings == nil {
		return []domain.Booking{}, nil
	}
	return bookings, nil
}

func (s *BookingService) GetStats(ctx context.Context) (*domain.BookingStats, error) {
	bookings, err := s.bookingRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	stats := Aggregate(bookings, time.Now().Format(domain.DateLayout))
	return &stats, nil
}

func (s *BookingService) ExportLedger(ctx context.Context) ([]byte, error) {
	bookings, err := s.bookingRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	data, err := s.bookingRepo.Export(bookings)
	if err != nil {
		return nil, fmt.Errorf("failed to encode bookings export: %w", err)
	}
	return data, nil
}

// Aggregate computes booking count, total revenue and revenue for the
// given date. "Today" is the server-local calendar date, compared by
// string equality against the same YYYY-MM-DD format written at save
// time.
func Aggregate(bookings []domain.Booking, today string) domain.BookingStats {
	stats := domain.BookingStats{
		TotalBookings: len(bookings),
		TotalRevenue:  decimal.Zero,
		TodayRevenue:  decimal.Zero,
	}
	for _, b := range bookings {
		stats.TotalRevenue = stats.TotalRevenue.Add(b.Price)
		if b.BookingDate == today {
			stats.TodayRevenue = stats.TodayRevenue.Add(b.Price)
		}
	}
	return stats
}
