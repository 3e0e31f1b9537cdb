package budget

import (
	"fmt"
	"io"
	"strings"

	"github.com/budgetflow/budget-cli/internal/model"
)

// RenderCategories writes a category map as two side-by-side fixed-width
// columns, two entries per line.
func RenderCategories(w io.Writer, m *model.CategoryMap, header string) {
	fmt.Fprintf(w, "\n%s:\n%s\n", header, strings.Repeat("=", 68))
	left := true
	for _, label := range m.Labels() {
		amount, _ := m.Amount(label)
		if left {
			fmt.Fprintf(w, "%-22s %6s          ", label, amount)
		} else {
			fmt.Fprintf(w, "%-22s %6s\n", label, amount)
		}
		left = !left
	}
	if !left {
		fmt.Fprintln(w)
	}
}

// RenderEntries writes a transaction history as a four-column
// fixed-width table.
func RenderEntries(w io.Writer, entries model.EntryList, header string) {
	fmt.Fprintf(w, "\n%s:\n%s\n", header, strings.Repeat("=", 79))
	for _, e := range entries {
		fmt.Fprintf(w, "%12s %12s    %-35s %-15s\n", e.Date, e.Amount, e.Description, e.Category)
	}
}

// RenderSummary writes the month title and the expense/income totals.
func RenderSummary(w io.Writer, title, expenseTotal, incomeTotal string) {
	fmt.Fprintf(w, "\n%s\n%s\nExpenses:%7s\nIncome:%9s\n", title, strings.Repeat("=", 16), expenseTotal, incomeTotal)
}

// RenderSynced writes the per-category pairs written during a sync.
func RenderSynced(w io.Writer, synced []SyncedCategory) {
	for _, s := range synced {
		fmt.Fprintf(w, "%-22s %6s\n", s.Label, s.Amount)
	}
}
