package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validServiceAccountConfig() Config {
	cfg := DefaultConfig()
	cfg.SpreadsheetID = "1abc"
	cfg.ServiceAccountPath = "/etc/grocery-bot/sa.json"
	return cfg
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid service account",
			mutate: func(*Config) {},
		},
		{
			name: "valid oauth",
			mutate: func(c *Config) {
				c.ServiceAccountPath = ""
				c.ClientID = "id"
				c.ClientSecret = "secret"
				c.RefreshToken = "token"
			},
		},
		{
			name:    "missing spreadsheet ID",
			mutate:  func(c *Config) { c.SpreadsheetID = "" },
			wantErr: "spreadsheet ID is required",
		},
		{
			name: "no auth method",
			mutate: func(c *Config) {
				c.ServiceAccountPath = ""
			},
			wantErr: "no authentication method",
		},
		{
			name: "partial oauth is not an auth method",
			mutate: func(c *Config) {
				c.ServiceAccountPath = ""
				c.ClientID = "id"
				c.ClientSecret = "secret"
			},
			wantErr: "no authentication method",
		},
		{
			name: "both auth methods",
			mutate: func(c *Config) {
				c.ClientID = "id"
				c.ClientSecret = "secret"
				c.RefreshToken = "token"
			},
			wantErr: "multiple authentication methods",
		},
		{
			name:    "empty sheet name",
			mutate:  func(c *Config) { c.ItemsSheet = "" },
			wantErr: "sheet names cannot be empty",
		},
		{
			name:    "negative retry attempts",
			mutate:  func(c *Config) { c.RetryAttempts = -1 },
			wantErr: "retry attempts cannot be negative",
		},
		{
			name:    "negative retry delay",
			mutate:  func(c *Config) { c.RetryDelay = -1 },
			wantErr: "retry delay cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServiceAccountConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfigured(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Configured())

	cfg.SpreadsheetID = "1abc"
	assert.True(t, cfg.Configured())
}
