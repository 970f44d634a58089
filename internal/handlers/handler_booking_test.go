package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/continental-snooker/snooker_booking_app/internal/apperrors"
	"github.com/continental-snooker/snooker_booking_app/internal/core/domain"
	portssvc "github.com/continental-snooker/snooker_booking_app/internal/core/ports/services"
	"github.com/continental-snooker/snooker_booking_app/internal/dto"
	"github.com/continental-snooker/snooker_booking_app/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BookingService ---
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) SaveBooking(ctx context.Context, req dto.CreateBookingRequest) (*domain.Booking, decimal.Decimal, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, decimal.Zero, args.Error(2)
	}
	return args.Get(0).(*domain.Booking), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockBookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingService) GetStats(ctx context.Context) (*domain.BookingStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingStats), args.Error(1)
}

func (m *MockBookingService) ExportLedger(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

var _ portssvc.BookingSvcFacade = (*MockBookingService)(nil)

// --- Test Suite ---
type BookingHandlerTestSuite struct {
	suite.Suite
	mockService *MockBookingService
	router      *gin.Engine
}

func (suite *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockBookingService)
	handler := handlers.NewBookingHandler(suite.mockService, "₹")

	suite.router = gin.New()
	bookings := suite.router.Group("/api/v1/bookings")
	bookings.POST("/", handler.CreateBooking)
	bookings.GET("/", handler.ListBookings)
	bookings.GET("/stats", handler.GetStats)
	bookings.GET("/export", handler.ExportBookings)
}

func (suite *BookingHandlerTestSuite) postBooking(body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *BookingHandlerTestSuite) TestCreateBooking_Success() {
	req := dto.CreateBookingRequest{
		CustomerName: "Rahul",
		Table:        string(domain.EnglishTable1),
		StartTime:    "02:00 PM",
		EndTime:      "03:30 PM",
	}
	saved := &domain.Booking{
		CustomerName: "Rahul",
		Table:        domain.EnglishTable1,
		TimeRange:    "02:00 PM - 03:30 PM",
		Price:        decimal.NewFromInt(300),
		BookingDate:  "2026-08-29",
	}
	suite.mockService.On("SaveBooking", mock.Anything, req).
		Return(saved, decimal.RequireFromString("1.5"), nil).Once()

	w := suite.postBooking(req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.SaveBookingResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Rahul", resp.Booking.CustomerName)
	suite.Equal("02:00 PM - 03:30 PM", resp.Booking.TimeRange)
	suite.True(resp.Booking.Price.Equal(decimal.NewFromInt(300)))
	suite.True(resp.Hours.Equal(decimal.RequireFromString("1.5")))
	suite.Equal("Booking saved! Total Price: ₹300.00", resp.Message)

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *BookingHandlerTestSuite) TestCreateBooking_MissingField() {
	w := suite.postBooking(map[string]string{
		"customerName": "Rahul",
		"table":        string(domain.EnglishTable1),
		// no times
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "SaveBooking", mock.Anything, mock.Anything)
}

func (suite *BookingHandlerTestSuite) TestCreateBooking_InvalidTime() {
	req := dto.CreateBookingRequest{
		CustomerName: "Rahul",
		Table:        string(domain.EnglishTable1),
		StartTime:    "14:00",
		EndTime:      "15:00",
	}
	suite.mockService.On("SaveBooking", mock.Anything, req).
		Return(nil, decimal.Zero, apperrors.ErrInvalidTimeFormat).Once()

	w := suite.postBooking(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp["error"], "hh:mm AM/PM")
}

func (suite *BookingHandlerTestSuite) TestCreateBooking_CorruptLedger() {
	req := dto.CreateBookingRequest{
		CustomerName: "Rahul",
		Table:        string(domain.EnglishTable1),
		StartTime:    "02:00 PM",
		EndTime:      "03:00 PM",
	}
	suite.mockService.On("SaveBooking", mock.Anything, req).
		Return(nil, decimal.Zero, apperrors.ErrCorruptLedger).Once()

	w := suite.postBooking(req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp["error"], "unreadable")
}

func (suite *BookingHandlerTestSuite) TestListBookings() {
	records := []domain.Booking{
		{CustomerName: "B", BookingDate: "2026-08-29", Price: decimal.NewFromInt(300)},
		{CustomerName: "A", BookingDate: "2026-08-28", Price: decimal.NewFromInt(200)},
	}
	suite.mockService.On("ListBookings", mock.Anything).Return(records, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp struct {
		Bookings []dto.BookingResponse `json:"bookings"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Bookings, 2)
	suite.Equal("B", resp.Bookings[0].CustomerName)
}

func (suite *BookingHandlerTestSuite) TestGetStats() {
	stats := &domain.BookingStats{
		TotalBookings: 3,
		TotalRevenue:  decimal.RequireFromString("350.5"),
		TodayRevenue:  decimal.NewFromInt(100),
	}
	suite.mockService.On("GetStats", mock.Anything).Return(stats, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/stats", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.StatsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(3, resp.TotalBookings)
	suite.True(resp.TotalRevenue.Equal(decimal.RequireFromString("350.5")))
	suite.Equal("₹350.50", resp.TotalRevenueDisplay)
	suite.Equal("₹100.00", resp.TodayRevenueDisplay)
}

func (suite *BookingHandlerTestSuite) TestExportBookings() {
	payload := []byte{0x50, 0x4b, 0x03, 0x04}
	suite.mockService.On("ExportLedger", mock.Anything).Return(payload, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/export", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), `filename="snooker_bookings.xlsx"`)
	suite.Equal(payload, w.Body.Bytes())
}

func (suite *BookingHandlerTestSuite) TestGetStats_CorruptLedger() {
	suite.mockService.On("GetStats", mock.Anything).Return(nil, apperrors.ErrCorruptLedger).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/stats", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func TestBookingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}
