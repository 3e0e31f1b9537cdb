package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/budgetflow/budget-cli/internal/config"
	"github.com/budgetflow/budget-cli/internal/sheets"
)

// openStore resolves the application directory and returns the
// configuration store for it.
func openStore() (*config.Store, error) {
	if appDirFlag != "" {
		return config.NewStore(config.ExpandPath(appDirFlag)), nil
	}
	dir, err := config.DefaultDir()
	if err != nil {
		return nil, err
	}
	return config.NewStore(dir), nil
}

// cmdEnv bundles the loaded configuration and a connected gateway,
// everything a spreadsheet-touching command needs.
type cmdEnv struct {
	gw  sheets.Gateway
	cfg config.Config
}

// newEnv loads the persisted configuration and builds the Google Sheets
// gateway from cached credentials.
func newEnv(ctx context.Context) (*cmdEnv, error) {
	store, err := openStore()
	if err != nil {
		return nil, err
	}

	cfg, err := store.Load()
	if err != nil {
		return nil, err
	}

	sheetsCfg, err := config.LoadSheetsConfig(store.TokenPath())
	if err != nil {
		return nil, err
	}

	gw, err := sheets.NewClient(ctx, sheetsCfg, slog.Default())
	if err != nil {
		return nil, err
	}

	return &cmdEnv{gw: gw, cfg: cfg}, nil
}

// monthlyHint and annualHint decorate gateway read failures with the
// likely fix: the stored spreadsheet ID may be wrong.
func monthlyHint(err error) error {
	return idHint(err, "Monthly", "murl")
}

func annualHint(err error) error {
	return idHint(err, "Annual", "aurl")
}

func idHint(err error, kind, cmd string) error {
	var readErr *sheets.ReadError
	if errors.As(err, &readErr) {
		return fmt.Errorf("%s spreadsheet ID might be invalid: %s\nSet it using the following command:\nbudget %s <SPREADSHEET_URL>", kind, readErr.SpreadsheetID, cmd)
	}
	return err
}
