package sheets

import (
	"context"
	"sync"
)

// Fake is an in-memory Gateway implementation for tests: reads return
// stubbed rows and writes are recorded for inspection.
type Fake struct {
	reads    map[string][][]string
	Writes   []FakeWrite
	ReadErr  error
	WriteErr error
	mu       sync.Mutex
}

// FakeWrite records a single call to WriteRange.
type FakeWrite struct {
	SpreadsheetID string
	Range         string
	Values        [][]string
}

var _ Gateway = (*Fake)(nil)

// NewFake creates an empty fake gateway.
func NewFake() *Fake {
	return &Fake{reads: make(map[string][][]string)}
}

// Stub registers the rows returned for a (spreadsheet, range) read.
func (f *Fake) Stub(spreadsheetID, rangeExpr string, rows [][]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads[spreadsheetID+"/"+rangeExpr] = rows
}

// ReadRange implements the Gateway interface. Unstubbed ranges read as
// empty, matching the API's behavior for blank regions.
func (f *Fake) ReadRange(_ context.Context, spreadsheetID, rangeExpr string) ([][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ReadErr != nil {
		return nil, &ReadError{SpreadsheetID: spreadsheetID, Err: f.ReadErr}
	}
	return f.reads[spreadsheetID+"/"+rangeExpr], nil
}

// WriteRange implements the Gateway interface.
func (f *Fake) WriteRange(_ context.Context, spreadsheetID, rangeExpr string, values [][]string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.WriteErr != nil {
		return 0, f.WriteErr
	}
	f.Writes = append(f.Writes, FakeWrite{
		SpreadsheetID: spreadsheetID,
		Range:         rangeExpr,
		Values:        values,
	})
	var cells int64
	for _, row := range values {
		cells += int64(len(row))
	}
	return cells, nil
}
