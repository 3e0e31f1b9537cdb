package budget

import (
	"context"
	"fmt"

	"github.com/budgetflow/budget-cli/internal/model"
	"github.com/budgetflow/budget-cli/internal/sheets"
)

// SyncedCategory records a single amount copied into the annual sheet.
type SyncedCategory struct {
	Label  string
	Amount string
}

// Sync copies per-category amounts from the source map into the month
// column of one annual sheet. The annual sheet's category column is
// matched by label rather than position, so reordered or missing
// categories on either side are tolerated. Scanning stops after
// numCategories matches; rows beyond the matched set are left untouched.
func Sync(ctx context.Context, gw sheets.Gateway, annualID, sheetName string, source *model.CategoryMap, title string, numCategories, maxRows int) ([]SyncedCategory, error) {
	if len(title) < 3 {
		return nil, fmt.Errorf("cannot determine month from title %q", title)
	}
	monthCol, ok := model.MonthColumn(title[:3])
	if !ok {
		return nil, fmt.Errorf("cannot determine month from title %q", title)
	}

	labelRange := fmt.Sprintf("%s!C%d:C%d", sheetName, annualFirstRow, maxRows)
	rows, err := gw.ReadRange(ctx, annualID, labelRange)
	if err != nil {
		return nil, err
	}

	synced := make([]SyncedCategory, 0, numCategories)
	for i, row := range rows {
		if len(row) == 0 || row[0] == "" {
			continue
		}
		amount, ok := source.Amount(row[0])
		if !ok {
			continue
		}

		target := fmt.Sprintf("%s!%s%d", sheetName, monthCol, annualFirstRow+i)
		if _, err := gw.WriteRange(ctx, annualID, target, [][]string{{amount}}); err != nil {
			return synced, fmt.Errorf("failed to sync category %q: %w", row[0], err)
		}
		synced = append(synced, SyncedCategory{Label: row[0], Amount: amount})
		if len(synced) == numCategories {
			break
		}
	}
	return synced, nil
}
