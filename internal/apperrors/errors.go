package apperrors

import "errors"

// ErrEmptyCustomerName indicates the customer name was blank after trimming.
var ErrEmptyCustomerName = errors.New("customer name cannot be empty")

// ErrInvalidTimeFormat indicates a time string did not match the hh:mm AM/PM pattern.
var ErrInvalidTimeFormat = errors.New("invalid time format")

// ErrNonPositiveDuration indicates a booking whose end time does not fall after its start time.
var ErrNonPositiveDuration = errors.New("end time must be after start time")

// ErrUnknownTable indicates the requested table is not in the rate table.
var ErrUnknownTable = errors.New("unknown table")

// ErrCorruptLedger indicates the bookings file exists but could not be read.
var ErrCorruptLedger = errors.New("bookings ledger is corrupt")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")
