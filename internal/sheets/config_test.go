package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		errMsg  string
		config  Config
		wantErr bool
	}{
		{
			name: "complete config",
			config: Config{
				ClientID:     "test-client",
				ClientSecret: "test-secret",
				TokenFile:    "/tmp/token.json",
			},
			wantErr: false,
		},
		{
			name: "missing client secret",
			config: Config{
				ClientID:  "test-client",
				TokenFile: "/tmp/token.json",
			},
			wantErr: true,
			errMsg:  "missing Google Sheets OAuth2 credentials",
		},
		{
			name: "missing client id",
			config: Config{
				ClientSecret: "test-secret",
				TokenFile:    "/tmp/token.json",
			},
			wantErr: true,
			errMsg:  "missing Google Sheets OAuth2 credentials",
		},
		{
			name: "missing token file",
			config: Config{
				ClientID:     "test-client",
				ClientSecret: "test-secret",
			},
			wantErr: true,
			errMsg:  "missing token file path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
