package dto

import (
	"github.com/continental-snooker/snooker_booking_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBookingRequest defines the data needed to save a new booking.
// Start/end times are free text in hh:mm AM/PM form; the pricing layer
// validates the format.
type CreateBookingRequest struct {
	CustomerName string `json:"customerName" binding:"required"`
	Table        string `json:"table" binding:"required"`
	StartTime    string `json:"startTime" binding:"required"`
	EndTime      string `json:"endTime" binding:"required"`
}

// BookingResponse defines the data returned for a single booking.
type BookingResponse struct {
	CustomerName string          `json:"customerName"`
	Table        string          `json:"table"`
	TimeRange    string          `json:"timeRange"`
	Price        decimal.Decimal `json:"price"`
	BookingDate  string          `json:"bookingDate"`
}

// SaveBookingResponse is returned after a successful save.
type SaveBookingResponse struct {
	Booking BookingResponse `json:"booking"`
	Hours   decimal.Decimal `json:"hours"`
	Message string          `json:"message"`
}

// StatsResponse carries the aggregate figures for the stats pane.
// Display fields are pre-formatted with the configured currency symbol.
type StatsResponse struct {
	TotalBookings       int             `json:"totalBookings"`
	TotalRevenue        decimal.Decimal `json:"totalRevenue"`
	TodayRevenue        decimal.Decimal `json:"todayRevenue"`
	TotalRevenueDisplay string          `json:"totalRevenueDisplay"`
	TodayRevenueDisplay string          `json:"todayRevenueDisplay"`
}

// TableResponse describes one bookable table and its hourly rate.
type TableResponse struct {
	TableID    string          `json:"tableID"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
}

// ListTablesResponse is what the booking form needs to render itself.
type ListTablesResponse struct {
	Tables           []TableResponse `json:"tables"`
	DefaultStartTime string          `json:"defaultStartTime"`
	DefaultEndTime   string          `json:"defaultEndTime"`
}

// ToBookingResponse converts a domain.Booking to its response DTO.
func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		CustomerName: b.CustomerName,
		Table:        string(b.Table),
		TimeRange:    b.TimeRange,
		Price:        b.Price,
		BookingDate:  b.BookingDate,
	}
}

// ToListBookingResponse converts a slice of bookings to response DTOs.
func ToListBookingResponse(bookings []domain.Booking) []BookingResponse {
	res := make([]BookingResponse, len(bookings))
	for i := range bookings {
		res[i] = ToBookingResponse(&bookings[i])
	}
	return res
}
