package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DateLayout is the format used for the Date column of the ledger.
const DateLayout = "2006-01-02"

// TableID identifies one of the venue's snooker tables.
type TableID string

const (
	EnglishTable1 TableID = "English Snooker Table 1"
	EnglishTable2 TableID = "English Snooker Table 2"
	FrenchTable   TableID = "French Snooker Table"
)

// RateTable maps each bookable table to its hourly rate in currency units.
// It is fixed at process start and never mutated afterwards.
type RateTable map[TableID]decimal.Decimal

// TableIDs returns the table identifiers in a stable lexical order,
// suitable for rendering a select box.
func (r RateTable) TableIDs() []TableID {
	ids := make([]TableID, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Booking represents one row of the bookings ledger. Records are
// immutable once appended; there is no update or delete.
type Booking struct {
	CustomerName string          `json:"customerName"`
	Table        TableID         `json:"table"`
	TimeRange    string          `json:"timeRange"` // raw "<start> - <end>" as the user entered it
	Price        decimal.Decimal `json:"price"`
	BookingDate  string          `json:"bookingDate"` // YYYY-MM-DD, the day the record was created
}

// BookingStats holds the aggregate figures shown on the stats pane.
type BookingStats struct {
	TotalBookings int             `json:"totalBookings"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TodayRevenue  decimal.Decimal `json:"todayRevenue"`
}
