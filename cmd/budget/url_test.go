package main

import (
	"testing"

	"github.com/budgetflow/budget-cli/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTempAppDir(t *testing.T) *config.Store {
	t.Helper()
	dir := t.TempDir()
	prev := appDirFlag
	appDirFlag = dir
	t.Cleanup(func() { appDirFlag = prev })
	return config.NewStore(dir)
}

func TestSetSpreadsheetIDCreatesConfig(t *testing.T) {
	store := withTempAppDir(t)

	err := setSpreadsheetID("https://docs.google.com/spreadsheets/d/monthly-123/edit#gid=0", false)
	require.NoError(t, err)

	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "monthly-123", cfg.MonthlyID)
	assert.Empty(t, cfg.AnnualID)
}

func TestSetSpreadsheetIDPreservesOtherKind(t *testing.T) {
	store := withTempAppDir(t)
	require.NoError(t, store.Save(config.Config{MonthlyID: "monthly-123"}))

	err := setSpreadsheetID("https://docs.google.com/spreadsheets/d/annual-456/edit#gid=0", true)
	require.NoError(t, err)

	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "monthly-123", cfg.MonthlyID)
	assert.Equal(t, "annual-456", cfg.AnnualID)
}

func TestSetSpreadsheetIDInvalidURL(t *testing.T) {
	withTempAppDir(t)

	err := setSpreadsheetID("https://example.com/not-a-sheet", false)
	assert.ErrorIs(t, err, config.ErrInvalidURL)
}
