package main

import (
	"errors"
	"fmt"

	"github.com/budgetflow/budget-cli/internal/cli"
	"github.com/budgetflow/budget-cli/internal/config"
	"github.com/spf13/cobra"
)

func murlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "murl <url>",
		Short: "Set the monthly budget spreadsheet from its URL",
		Long:  `Extract the spreadsheet ID from a Google Sheets URL and store it as the monthly budget spreadsheet.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return setSpreadsheetID(args[0], false)
		},
	}
}

func aurlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "aurl <url>",
		Short: "Set the annual budget spreadsheet from its URL",
		Long:  `Extract the spreadsheet ID from a Google Sheets URL and store it as the annual budget spreadsheet.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return setSpreadsheetID(args[0], true)
		},
	}
}

func setSpreadsheetID(url string, annual bool) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	id, err := config.ExtractSpreadsheetID(url)
	if err != nil {
		return err
	}

	// First murl/aurl creates the configuration file.
	cfg, err := store.Load()
	if err != nil && !errors.Is(err, config.ErrConfigMissing) {
		return err
	}

	kind := "Monthly"
	if annual {
		cfg.AnnualID = id
		kind = "Annual"
	} else {
		cfg.MonthlyID = id
	}

	if err := store.Save(cfg); err != nil {
		return err
	}

	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("%s Budget Spreadsheet ID: %s", kind, id)))
	return nil
}
