package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/continental-snooker/snooker_booking_app/internal/apperrors"
	portssvc "github.com/continental-snooker/snooker_booking_app/internal/core/ports/services"
	"github.com/continental-snooker/snooker_booking_app/internal/dto"
	"github.com/continental-snooker/snooker_booking_app/internal/middleware"
	"github.com/continental-snooker/snooker_booking_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	exportFilename = "snooker_bookings.xlsx"
	exportMIMEType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Form defaults mirrored to the client via ListTables.
const (
	defaultStartTime = "02:00 PM"
	defaultEndTime   = "03:00 PM"
)

type BookingHandler struct {
	bookingService portssvc.BookingSvcFacade
	currencySymbol string
}

func NewBookingHandler(bookingService portssvc.BookingSvcFacade, currencySymbol string) *BookingHandler {
	return &BookingHandler{bookingService: bookingService, currencySymbol: currencySymbol}
}

// CreateBooking godoc
// @Summary Save a new booking
// @Description Validates the booking, prices it against the rate table and appends it to the ledger
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body dto.CreateBookingRequest true "Booking details"
// @Success 201 {object} dto.SaveBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /bookings/ [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	booking, hours, err := h.bookingService.SaveBooking(c.Request.Context(), req)
	if err != nil {
		h.respondSaveError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SaveBookingResponse{
		Booking: dto.ToBookingResponse(booking),
		Hours:   hours,
		Message: fmt.Sprintf("Booking saved! Total Price: %s", utils.FormatCurrency(h.currencySymbol, booking.Price)),
	})
}

// ListBookings godoc
// @Summary List all bookings
// @Description Returns every booking, sorted by booking date descending
// @Tags bookings
// @Produce json
// @Success 200 {object} map[string][]dto.BookingResponse
// @Failure 500 {object} map[string]string
// @Router /bookings/ [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.bookingService.ListBookings(c.Request.Context())
	if err != nil {
		h.respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": dto.ToListBookingResponse(bookings)})
}

// GetStats godoc
// @Summary Get booking statistics
// @Description Returns booking count, total revenue and today's revenue; an absent ledger yields zeros, not an error
// @Tags bookings
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Failure 500 {object} map[string]string
// @Router /bookings/stats [get]
func (h *BookingHandler) GetStats(c *gin.Context) {
	stats, err := h.bookingService.GetStats(c.Request.Context())
	if err != nil {
		h.respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatsResponse{
		TotalBookings:       stats.TotalBookings,
		TotalRevenue:        stats.TotalRevenue,
		TodayRevenue:        stats.TodayRevenue,
		TotalRevenueDisplay: utils.FormatCurrency(h.currencySymbol, stats.TotalRevenue),
		TodayRevenueDisplay: utils.FormatCurrency(h.currencySymbol, stats.TodayRevenue),
	})
}

// ExportBookings godoc
// @Summary Download the bookings ledger
// @Description Streams the full ledger as an xlsx attachment
// @Tags bookings
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} map[string]string
// @Router /bookings/export [get]
func (h *BookingHandler) ExportBookings(c *gin.Context) {
	data, err := h.bookingService.ExportLedger(c.Request.Context())
	if err != nil {
		h.respondLedgerError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename))
	c.Data(http.StatusOK, exportMIMEType, data)
}

func (h *BookingHandler) respondSaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrEmptyCustomerName):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Customer Name cannot be empty."})
	case errors.Is(err, apperrors.ErrInvalidTimeFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time format. Please use hh:mm AM/PM (e.g., 02:30 PM)."})
	case errors.Is(err, apperrors.ErrNonPositiveDuration):
		c.JSON(http.StatusBadRequest, gin.H{"error": "End time must be after start time."})
	case errors.Is(err, apperrors.ErrUnknownTable):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown table selected."})
	default:
		h.respondLedgerError(c, err)
	}
}

// respondLedgerError distinguishes a broken ledger file from any other
// failure; both end up as 500s but with different messages, since a
// corrupt ledger needs operator attention.
func (h *BookingHandler) respondLedgerError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromContext(c)
	if errors.Is(err, apperrors.ErrCorruptLedger) {
		logger.Error("Bookings ledger is unreadable", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "The bookings file is unreadable. Please contact the administrator."})
		return
	}
	logger.Error("Unexpected failure", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred."})
}

// bindingErrorMessage turns gin binding failures into field-level
// messages instead of leaking validator internals to the client.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Sprintf("Field '%s' is %s.", verrs[0].Field(), verrs[0].Tag())
	}
	return "Invalid request body."
}
