package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Configuration errors.
var (
	// ErrConfigMissing indicates that no configuration file exists yet.
	ErrConfigMissing = errors.New("configuration file not found")
	// ErrInvalidURL indicates that a spreadsheet URL could not be parsed.
	ErrInvalidURL = errors.New("invalid spreadsheet URL")
)

// URL markers delimiting the spreadsheet ID in a Google Sheets URL.
const (
	idMarkerStart = "spreadsheets/d/"
	idMarkerEnd   = "/edit#"
)

// Config holds the persisted spreadsheet identifiers. The JSON keys match
// the configuration files written by earlier releases.
type Config struct {
	MonthlyID string `json:"monthly-budget-id"`
	AnnualID  string `json:"annual-budget-id"`
}

// Store reads and writes the configuration file in the application
// directory. The file is always written whole; there are no partial
// updates.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir returns the default application directory, ~/.budget-cli.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".budget-cli"), nil
}

// Path returns the location of the configuration file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, "config.json")
}

// TokenPath returns the location of the cached OAuth token, kept alongside
// the configuration file.
func (s *Store) TokenPath() string {
	return filepath.Join(s.dir, "token.json")
}

// Load reads the full configuration. It returns ErrConfigMissing when the
// file does not exist.
func (s *Store) Load() (Config, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, ErrConfigMissing
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save overwrites the configuration file with the full configuration,
// pretty-printed with UTF-8 preserved.
func (s *Store) Save(cfg Config) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(s.Path(), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ExtractSpreadsheetID extracts a spreadsheet ID from its URL by slicing
// between the "spreadsheets/d/" and "/edit#" markers. It fails with
// ErrInvalidURL when either marker is absent.
func ExtractSpreadsheetID(url string) (string, error) {
	start := strings.Index(url, idMarkerStart)
	end := strings.Index(url, idMarkerEnd)
	if start == -1 || end == -1 || start+len(idMarkerStart) > end {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, url)
	}
	return url[start+len(idMarkerStart) : end], nil
}
