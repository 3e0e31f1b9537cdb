// Package sheets provides the spreadsheet gateway over the Google Sheets
// API: reading and writing rectangular cell ranges keyed by spreadsheet ID.
package sheets

import (
	"context"
	"fmt"
)

// Gateway is the contract the rest of the application depends on. Rows are
// returned in row-major order; trailing empty cells are omitted per row, so
// rows may be jagged.
type Gateway interface {
	// ReadRange reads the cells of an A1-style range expression.
	ReadRange(ctx context.Context, spreadsheetID, rangeExpr string) ([][]string, error)
	// WriteRange overwrites a range with the given values using
	// user-entered semantics and returns how many cells were updated.
	WriteRange(ctx context.Context, spreadsheetID, rangeExpr string, values [][]string) (int64, error)
}

// ReadError wraps a failed range read with the spreadsheet it targeted so
// commands can suggest that the stored ID may be wrong.
type ReadError struct {
	Err           error
	SpreadsheetID string
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read from spreadsheet %s: %v", e.SpreadsheetID, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
