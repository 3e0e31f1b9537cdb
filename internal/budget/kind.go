package budget

import (
	"context"
	"fmt"

	"github.com/budgetflow/budget-cli/internal/model"
	"github.com/budgetflow/budget-cli/internal/sheets"
)

// Kind distinguishes the expense and income sides of the budget.
type Kind string

// Transaction kinds.
const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

// entryColumns returns the first and last column of the kind's four-column
// block in the Transactions sheet.
func (k Kind) entryColumns() (start, end string) {
	if k == KindIncome {
		return "G", "J"
	}
	return "B", "E"
}

// AppendEntry writes a validated entry one row past the last existing row
// of the kind's transaction block and returns how many cells were updated.
func AppendEntry(ctx context.Context, gw sheets.Gateway, spreadsheetID string, kind Kind, entry model.Entry, existingEntries int) (int64, error) {
	row := firstEntryRow + existingEntries
	start, end := kind.entryColumns()
	rangeExpr := fmt.Sprintf("Transactions!%s%d:%s%d", start, row, end, row)
	return gw.WriteRange(ctx, spreadsheetID, rangeExpr, [][]string{entry.Row()})
}
