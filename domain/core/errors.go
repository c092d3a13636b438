package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrSourceRead covers unreadable uploads and missing sheets.
	ErrSourceRead = errors.New("source unreadable")

	// ErrSchema covers required columns missing after reconciliation and
	// cells that cannot be parsed into the column's declared type.
	ErrSchema = errors.New("schema mismatch")

	// ErrEmptyResult is the terminal state for a filter selection that
	// matches zero rows. It is not a failure; callers short-circuit
	// aggregation and show guidance instead of charts.
	ErrEmptyResult = errors.New("no rows match the selected filters")

	// ErrNoTable is returned when a query arrives before both sources
	// have been uploaded and merged.
	ErrNoTable = errors.New("no unified table loaded")
)

// Error constructors with context
func NewSourceReadError(source string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrSourceRead, source, cause)
}

func NewMissingSheetError(source, sheet string) error {
	return fmt.Errorf("%w: %s has no sheet %q", ErrSourceRead, source, sheet)
}

func NewMissingColumnsError(source string, columns []string) error {
	return fmt.Errorf("%w: %s is missing required columns %v", ErrSchema, source, columns)
}

func NewBadCellError(source, column string, rowNum int, value string) error {
	return fmt.Errorf("%w: %s row %d: %q is not a valid %s value", ErrSchema, source, rowNum, value, column)
}

// Error checking helpers
func IsSourceReadError(err error) bool {
	return errors.Is(err, ErrSourceRead)
}

func IsSchemaError(err error) bool {
	return errors.Is(err, ErrSchema)
}

func IsEmptyResult(err error) bool {
	return errors.Is(err, ErrEmptyResult)
}
