package config

import (
	"os"

	"github.com/budgetflow/budget-cli/internal/sheets"
	"github.com/spf13/viper"
)

// LoadSheetsConfig loads the Google Sheets OAuth configuration. It follows
// this precedence:
// 1. Viper configuration (from config.yaml or BUDGET_ env vars)
// 2. Direct environment variables (GOOGLE_SHEETS_*)
func LoadSheetsConfig(tokenFile string) (sheets.Config, error) {
	cfg := sheets.Config{TokenFile: tokenFile}

	cfg.ClientID = viper.GetString("sheets.client_id")
	cfg.ClientSecret = viper.GetString("sheets.client_secret")

	if cfg.ClientID == "" {
		cfg.ClientID = os.Getenv("GOOGLE_SHEETS_CLIENT_ID")
	}
	if cfg.ClientSecret == "" {
		cfg.ClientSecret = os.Getenv("GOOGLE_SHEETS_CLIENT_SECRET")
	}

	if err := cfg.Validate(); err != nil {
		return sheets.Config{}, err
	}
	return cfg, nil
}
