package budget

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/budgetflow/budget-cli/internal/model"
	"github.com/shopspring/decimal"
)

// ErrFieldCount indicates a transaction with the wrong number of fields.
var ErrFieldCount = errors.New("invalid number of fields in transaction")

// maxAmount is the inclusive upper bound on a transaction amount.
var maxAmount = decimal.NewFromInt(99999)

// AmountError indicates a transaction amount that is not a number in
// (0, 99999].
type AmountError struct {
	Value string
}

func (e *AmountError) Error() string {
	return fmt.Sprintf("invalid transaction amount: %s", e.Value)
}

// CategoryError indicates a transaction category that is not a key of the
// current category map. Valid carries the accepted labels for display.
type CategoryError struct {
	Value string
	Valid []string
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("invalid category: %s", e.Value)
}

// ParseTransaction validates a raw comma-separated transaction against the
// category map for its kind. Three fields get today's date prepended;
// dateFilled reports when that happened so the user can be told.
func ParseTransaction(raw string, categories *model.CategoryMap) (entry model.Entry, dateFilled bool, err error) {
	fields := strings.Split(raw, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	if len(fields) != 3 && len(fields) != 4 {
		return model.Entry{}, false, fmt.Errorf("%w: got %d", ErrFieldCount, len(fields))
	}

	if len(fields) == 3 {
		today := time.Now().Format("2006-01-02")
		fields = append([]string{today}, fields...)
		dateFilled = true
	}

	amount, err := decimal.NewFromString(fields[1])
	if err != nil || !amount.IsPositive() || amount.GreaterThan(maxAmount) {
		return model.Entry{}, dateFilled, &AmountError{Value: fields[1]}
	}

	if !categories.Has(fields[3]) {
		return model.Entry{}, dateFilled, &CategoryError{Value: fields[3], Valid: categories.Labels()}
	}

	return model.EntryFromRow(fields), dateFilled, nil
}
