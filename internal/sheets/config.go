package sheets

import "fmt"

// Config holds the OAuth2 credentials and token location for the Google
// Sheets client.
type Config struct {
	ClientID     string
	ClientSecret string
	TokenFile    string
}

// Validate checks if the configuration is complete enough to build a
// client.
func (c Config) Validate() error {
	if c.ClientID == "" || c.ClientSecret == "" {
		return fmt.Errorf("missing Google Sheets OAuth2 credentials: set sheets.client_id and sheets.client_secret")
	}
	if c.TokenFile == "" {
		return fmt.Errorf("missing token file path")
	}
	return nil
}
