package pricing

import (
	"fmt"
	"strings"
	"time"

	"github.com/continental-snooker/snooker_booking_app/internal/apperrors"
	"github.com/continental-snooker/snooker_booking_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// clockLayout matches 12-hour clock strings like "02:30 PM".
const clockLayout = "03:04 PM"

// Quote is the outcome of pricing a time range against a table's hourly rate.
type Quote struct {
	Hours decimal.Decimal
	Price decimal.Decimal
}

// ComputePrice parses the start/end clock strings, derives the booked
// duration and prices it against the table's hourly rate. It is a pure
// function of its inputs and the rate table.
//
// The duration is taken on a dateless 24-hour wall clock: a negative
// raw difference gets one day added, so a booking that crosses
// midnight (11 PM to 1 AM) comes out as two hours.
func ComputePrice(rates domain.RateTable, table domain.TableID, startText, endText string) (Quote, error) {
	rate, ok := rates[table]
	if !ok {
		return Quote{}, fmt.Errorf("%w: %q", apperrors.ErrUnknownTable, table)
	}

	start, err := parseClock(startText)
	if err != nil {
		return Quote{}, err
	}
	end, err := parseClock(endText)
	if err != nil {
		return Quote{}, err
	}

	duration := end.Sub(start)
	if duration < 0 {
		duration += 24 * time.Hour
	}
	if duration <= 0 {
		return Quote{}, apperrors.ErrNonPositiveDuration
	}

	hours := decimal.NewFromInt(int64(duration / time.Second)).Div(decimal.NewFromInt(3600))
	// Round(2) rounds half away from zero.
	price := hours.Mul(rate).Round(2)

	return Quote{Hours: hours, Price: price}, nil
}

// parseClock accepts free-text 12-hour clock input. Matching is
// case-insensitive and tolerant of surrounding whitespace.
func parseClock(text string) (time.Time, error) {
	t, err := time.Parse(clockLayout, strings.ToUpper(strings.TrimSpace(text)))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidTimeFormat, text)
	}
	return t, nil
}
