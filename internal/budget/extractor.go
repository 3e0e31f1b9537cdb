package budget

import (
	"context"
	"fmt"

	"github.com/budgetflow/budget-cli/internal/model"
	"github.com/budgetflow/budget-cli/internal/sheets"
)

// Summary wraps the raw rows of the monthly budget's summary range and
// exposes the cells the commands care about.
type Summary struct {
	rows [][]string
}

// ReadSummary reads the summary range of the monthly spreadsheet. The
// maps derived from it are never cached; every invocation reads fresh.
func ReadSummary(ctx context.Context, gw sheets.Gateway, spreadsheetID string) (*Summary, error) {
	rows, err := gw.ReadRange(ctx, spreadsheetID, summaryRange)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("summary range %s is empty; is this a budget spreadsheet?", summaryRange)
	}
	return &Summary{rows: rows}, nil
}

// NewSummary wraps already-fetched summary rows.
func NewSummary(rows [][]string) *Summary {
	return &Summary{rows: rows}
}

// Title returns the month title of the summary, e.g. "March 2024".
func (s *Summary) Title() string {
	return cell(s.rows, titleRow, titleCol)
}

// ExpenseTotal returns the monthly expense total as formatted in the sheet.
func (s *Summary) ExpenseTotal() string {
	return cell(s.rows, totalsRow, expenseTotalCol)
}

// IncomeTotal returns the monthly income total as formatted in the sheet.
func (s *Summary) IncomeTotal() string {
	return cell(s.rows, totalsRow, incomeTotalCol)
}

// CategoryCounts returns how many expense and income categories the
// summary holds. The expense side fills every row past the category block
// start; an income category exists only on rows where the income columns
// are populated, which shows up as exactly incomeRowWidth cells.
func (s *Summary) CategoryCounts() (numExpense, numIncome int) {
	numExpense = len(s.rows) - categoryBlockStart
	if numExpense < 0 {
		numExpense = 0
	}
	for r := categoryBlockStart; r < len(s.rows); r++ {
		if len(s.rows[r]) == incomeRowWidth {
			numIncome++
		}
	}
	return numExpense, numIncome
}

// Categories builds the expense and income category maps from the summary
// rows, preserving first-occurrence order.
func (s *Summary) Categories(numExpense, numIncome int) (expenses, income *model.CategoryMap) {
	expenses = extractCategoryMap(s.rows, numExpense, expenseLabelCol, expenseAmountCol)
	income = extractCategoryMap(s.rows, numIncome, incomeLabelCol, incomeAmountCol)
	return expenses, income
}

func extractCategoryMap(rows [][]string, count, labelCol, amountCol int) *model.CategoryMap {
	m := model.NewCategoryMap()
	for r := categoryBlockStart; r < categoryBlockStart+count; r++ {
		label := cell(rows, r, labelCol)
		if label == "" {
			continue
		}
		m.Set(label, cell(rows, r, amountCol))
	}
	return m
}

// ExtractEntries reads the expense and income transaction histories from
// the monthly spreadsheet, in row order.
func ExtractEntries(ctx context.Context, gw sheets.Gateway, spreadsheetID string) (expenses, income model.EntryList, err error) {
	expenseRows, err := gw.ReadRange(ctx, spreadsheetID, expenseEntriesRange)
	if err != nil {
		return nil, nil, err
	}
	incomeRows, err := gw.ReadRange(ctx, spreadsheetID, incomeEntriesRange)
	if err != nil {
		return nil, nil, err
	}
	return model.EntriesFromRows(expenseRows), model.EntriesFromRows(incomeRows), nil
}
