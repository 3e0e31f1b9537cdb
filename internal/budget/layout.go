// Package budget implements the monthly-budget operations: extracting
// categories and entries from the spreadsheet template, validating new
// transactions, synchronizing the annual rollup, and rendering tables.
package budget

import "fmt"

// MaxRows bounds every range read. The templates never exceed it.
const MaxRows = 1000

// Fixed layout constants of the monthly budget template. All row and
// column indices are relative to the top-left of the summary range.
const (
	// categoryBlockStart is the first summary row of the per-category block.
	categoryBlockStart = 20
	expenseLabelCol    = 0
	expenseAmountCol   = 3
	incomeLabelCol     = 6
	incomeAmountCol    = 9
	// incomeRowWidth is the populated-cell count that marks a summary row
	// as having an income-side category.
	incomeRowWidth = 10

	titleRow        = 0
	titleCol        = 0
	totalsRow       = 14
	expenseTotalCol = 1
	incomeTotalCol  = 7

	// firstEntryRow is the first transaction row in the Transactions sheet.
	firstEntryRow = 5
	// annualFirstRow is the first category row in the annual sheets.
	annualFirstRow = 4
)

var (
	summaryRange        = fmt.Sprintf("Summary!B8:K%d", MaxRows)
	expenseEntriesRange = fmt.Sprintf("Transactions!B5:E%d", MaxRows)
	incomeEntriesRange  = fmt.Sprintf("Transactions!G5:J%d", MaxRows)
)

// cell returns rows[r][c], or "" when the row is absent or too short.
// Rows from the gateway are jagged: trailing empty cells are omitted.
func cell(rows [][]string, r, c int) string {
	if r >= len(rows) || c >= len(rows[r]) {
		return ""
	}
	return rows[r][c]
}
