package budget

import (
	"context"
	"testing"

	"github.com/budgetflow/budget-cli/internal/sheets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSummaryRows builds a minimal summary range with three expense
// categories (rows 20-22) of which the first two also carry an income
// category (exactly ten populated cells).
func testSummaryRows() [][]string {
	rows := make([][]string, 23)
	rows[0] = []string{"March 2024"}
	rows[14] = []string{"", "950", "", "", "", "", "", "1200"}
	rows[20] = []string{"Food", "", "", "120", "", "", "Salary", "", "", "1200"}
	rows[21] = []string{"Rent", "", "", "500", "", "", "Interest", "", "", "15"}
	rows[22] = []string{"Utilities", "", "", "40"}
	return rows
}

func TestSummaryHeader(t *testing.T) {
	s := NewSummary(testSummaryRows())

	assert.Equal(t, "March 2024", s.Title())
	assert.Equal(t, "950", s.ExpenseTotal())
	assert.Equal(t, "1200", s.IncomeTotal())
}

func TestSummaryCategoryCounts(t *testing.T) {
	s := NewSummary(testSummaryRows())

	numExpense, numIncome := s.CategoryCounts()
	assert.Equal(t, 3, numExpense)
	assert.Equal(t, 2, numIncome)
}

func TestSummaryCategoryCountsShortSummary(t *testing.T) {
	s := NewSummary([][]string{{"March 2024"}})

	numExpense, numIncome := s.CategoryCounts()
	assert.Zero(t, numExpense)
	assert.Zero(t, numIncome)
}

func TestSummaryCategories(t *testing.T) {
	s := NewSummary(testSummaryRows())
	expenses, income := s.Categories(s.CategoryCounts())

	// Label→amount pairing and first-occurrence order both preserved.
	assert.Equal(t, []string{"Food", "Rent", "Utilities"}, expenses.Labels())
	for label, want := range map[string]string{"Food": "120", "Rent": "500", "Utilities": "40"} {
		amount, ok := expenses.Amount(label)
		assert.True(t, ok, label)
		assert.Equal(t, want, amount, label)
	}

	assert.Equal(t, []string{"Salary", "Interest"}, income.Labels())
	amount, ok := income.Amount("Salary")
	assert.True(t, ok)
	assert.Equal(t, "1200", amount)
}

func TestReadSummaryEmpty(t *testing.T) {
	gw := sheets.NewFake()

	_, err := ReadSummary(context.Background(), gw, "monthly-id")
	assert.Error(t, err)
}

func TestReadSummaryReadFailure(t *testing.T) {
	gw := sheets.NewFake()
	gw.ReadErr = assert.AnError

	_, err := ReadSummary(context.Background(), gw, "monthly-id")

	var readErr *sheets.ReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, "monthly-id", readErr.SpreadsheetID)
}

func TestExtractEntries(t *testing.T) {
	gw := sheets.NewFake()
	gw.Stub("monthly-id", "Transactions!B5:E1000", [][]string{
		{"2024-03-01", "12.30", "lunch", "Food"},
		{"2024-03-02", "500", "march rent", "Rent"},
	})
	gw.Stub("monthly-id", "Transactions!G5:J1000", [][]string{
		{"2024-03-01", "1200", "paycheck", "Salary"},
	})

	expenses, income, err := ExtractEntries(context.Background(), gw, "monthly-id")
	require.NoError(t, err)

	require.Len(t, expenses, 2)
	assert.Equal(t, "lunch", expenses[0].Description)
	assert.Equal(t, "march rent", expenses[1].Description)

	require.Len(t, income, 1)
	assert.Equal(t, "Salary", income[0].Category)
}

func TestExtractEntriesEmpty(t *testing.T) {
	gw := sheets.NewFake()

	expenses, income, err := ExtractEntries(context.Background(), gw, "monthly-id")
	require.NoError(t, err)
	assert.Empty(t, expenses)
	assert.Empty(t, income)
}
