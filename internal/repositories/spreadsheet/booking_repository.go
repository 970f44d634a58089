package spreadsheet

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/continental-snooker/snooker_booking_app/internal/apperrors"
	"github.com/continental-snooker/snooker_booking_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// header is the fixed column layout of the ledger file. Load refuses
// files whose first row does not match it.
var header = []string{"Name", "Table", "Time", "Price", "Date"}

// BookingRepository persists bookings in a single xlsx file. Append is
// load-entire-then-rewrite-entire; concurrent writers from separate
// processes can lose an update (last writer wins), which the design
// accepts.
type BookingRepository struct {
	path string
}

func NewBookingRepository(path string) *BookingRepository {
	return &BookingRepository{path: path}
}

func (r *BookingRepository) LoadAll(ctx context.Context) ([]domain.Booking, error) {
	if _, err := os.Stat(r.path); errors.Is(err, fs.ErrNotExist) {
		// No bookings yet is a valid state, not an error.
		return []domain.Booking{}, nil
	}

	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", apperrors.ErrCorruptLedger, r.path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: reading sheet %s: %v", apperrors.ErrCorruptLedger, sheetName, err)
	}
	if len(rows) == 0 || !headerMatches(rows[0]) {
		return nil, fmt.Errorf("%w: unexpected header in %s", apperrors.ErrCorruptLedger, r.path)
	}

	bookings := make([]domain.Booking, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cells := padRow(row)
		if isBlank(cells) {
			continue
		}
		bookings = append(bookings, domain.Booking{
			CustomerName: cells[0],
			Table:        domain.TableID(cells[1]),
			TimeRange:    cells[2],
			Price:        parsePrice(cells[3]),
			BookingDate:  cells[4],
		})
	}
	return bookings, nil
}

func (r *BookingRepository) Append(ctx context.Context, booking domain.Booking) error {
	bookings, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}
	bookings = append(bookings, booking)

	f, err := encodeWorkbook(bookings)
	if err != nil {
		return err
	}
	defer f.Close()

	return r.replaceFile(f)
}

func (r *BookingRepository) Export(bookings []domain.Booking) ([]byte, error) {
	f, err := encodeWorkbook(bookings)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// replaceFile writes the workbook to a temp file in the ledger's
// directory and renames it over the ledger, so a crash mid-write never
// leaves a half-written file behind.
func (r *BookingRepository) replaceFile(f *excelize.File) error {
	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".bookings-*.xlsx")
	if err != nil {
		return fmt.Errorf("failed to create temp ledger file: %w", err)
	}
	tmpName := tmp.Name()

	if err := f.Write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp ledger file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace ledger file: %w", err)
	}
	return nil
}

func encodeWorkbook(bookings []domain.Booking) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}
	for i, b := range bookings {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to compute row cell: %w", err)
		}
		// Price goes in as a number so the column stays numeric in
		// spreadsheet tools.
		row := []interface{}{b.CustomerName, string(b.Table), b.TimeRange, b.Price.InexactFloat64(), b.BookingDate}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write booking row: %w", err)
		}
	}
	return f, nil
}

func headerMatches(row []string) bool {
	if len(row) != len(header) {
		return false
	}
	for i, col := range header {
		if strings.TrimSpace(row[i]) != col {
			return false
		}
	}
	return true
}

// parsePrice coerces a Price cell to a decimal; non-numeric or missing
// values count as zero.
func parsePrice(cell string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(cell))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func padRow(row []string) []string {
	if len(row) >= len(header) {
		return row
	}
	cells := make([]string, len(header))
	copy(cells, row)
	return cells
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
