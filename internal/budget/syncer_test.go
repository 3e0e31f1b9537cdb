package budget

import (
	"context"
	"testing"

	"github.com/budgetflow/budget-cli/internal/model"
	"github.com/budgetflow/budget-cli/internal/sheets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncMatchesByLabel(t *testing.T) {
	gw := sheets.NewFake()
	gw.Stub("annual-id", "Expenses!C4:C1000", [][]string{
		{"Food"},
		{"Rent"},
		{"Utilities"},
	})

	source := model.NewCategoryMap()
	source.Set("Food", "120")
	source.Set("Utilities", "40")

	synced, err := Sync(context.Background(), gw, "annual-id", "Expenses", source, "March 2024", 2, MaxRows)
	require.NoError(t, err)

	// Exactly two writes: column F (Mar), rows 4 and 6. Rent untouched.
	require.Len(t, gw.Writes, 2)
	assert.Equal(t, "Expenses!F4", gw.Writes[0].Range)
	assert.Equal(t, [][]string{{"120"}}, gw.Writes[0].Values)
	assert.Equal(t, "Expenses!F6", gw.Writes[1].Range)
	assert.Equal(t, [][]string{{"40"}}, gw.Writes[1].Values)

	assert.Equal(t, []SyncedCategory{
		{Label: "Food", Amount: "120"},
		{Label: "Utilities", Amount: "40"},
	}, synced)
}

func TestSyncStopsAfterExpectedCount(t *testing.T) {
	gw := sheets.NewFake()
	gw.Stub("annual-id", "Income!C4:C1000", [][]string{
		{"Salary"},
		{"Interest"},
		{"Salary"}, // duplicate label past the expected count
	})

	source := model.NewCategoryMap()
	source.Set("Salary", "1200")
	source.Set("Interest", "15")

	synced, err := Sync(context.Background(), gw, "annual-id", "Income", source, "January 2024", 2, MaxRows)
	require.NoError(t, err)

	assert.Len(t, synced, 2)
	assert.Len(t, gw.Writes, 2, "scan must stop once the expected count is written")
	assert.Equal(t, "Income!D4", gw.Writes[0].Range)
	assert.Equal(t, "Income!D5", gw.Writes[1].Range)
}

func TestSyncSkipsBlankAndUnknownRows(t *testing.T) {
	gw := sheets.NewFake()
	gw.Stub("annual-id", "Expenses!C4:C1000", [][]string{
		nil,
		{""},
		{"Mystery"},
		{"Food"},
	})

	source := model.NewCategoryMap()
	source.Set("Food", "120")

	synced, err := Sync(context.Background(), gw, "annual-id", "Expenses", source, "December 2024", 1, MaxRows)
	require.NoError(t, err)

	require.Len(t, gw.Writes, 1)
	assert.Equal(t, "Expenses!O7", gw.Writes[0].Range)
	assert.Equal(t, []SyncedCategory{{Label: "Food", Amount: "120"}}, synced)
}

func TestSyncTolerantOfReorderedAnnualSheet(t *testing.T) {
	gw := sheets.NewFake()
	gw.Stub("annual-id", "Expenses!C4:C1000", [][]string{
		{"Utilities"},
		{"Food"},
	})

	source := model.NewCategoryMap()
	source.Set("Food", "120")
	source.Set("Utilities", "40")

	synced, err := Sync(context.Background(), gw, "annual-id", "Expenses", source, "June 2024", 2, MaxRows)
	require.NoError(t, err)

	require.Len(t, synced, 2)
	assert.Equal(t, "Utilities", synced[0].Label)
	assert.Equal(t, "Food", synced[1].Label)
}

func TestSyncUnknownMonth(t *testing.T) {
	tests := []struct {
		name  string
		title string
	}{
		{name: "not a month", title: "Totals 2024"},
		{name: "too short", title: "20"},
		{name: "empty", title: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sync(context.Background(), sheets.NewFake(), "annual-id", "Expenses", model.NewCategoryMap(), tt.title, 1, MaxRows)
			assert.Error(t, err)
		})
	}
}

func TestSyncReadFailure(t *testing.T) {
	gw := sheets.NewFake()
	gw.ReadErr = assert.AnError

	_, err := Sync(context.Background(), gw, "annual-id", "Expenses", model.NewCategoryMap(), "March 2024", 1, MaxRows)

	var readErr *sheets.ReadError
	assert.ErrorAs(t, err, &readErr)
}

func TestSyncWriteFailureStopsEarly(t *testing.T) {
	gw := sheets.NewFake()
	gw.Stub("annual-id", "Expenses!C4:C1000", [][]string{{"Food"}, {"Rent"}})
	gw.WriteErr = assert.AnError

	source := model.NewCategoryMap()
	source.Set("Food", "120")
	source.Set("Rent", "500")

	synced, err := Sync(context.Background(), gw, "annual-id", "Expenses", source, "March 2024", 2, MaxRows)
	assert.Error(t, err)
	assert.Empty(t, synced)
}
