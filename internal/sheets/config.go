// Package sheets provides the Google Sheets catalog source and order sink.
package sheets

import (
	"fmt"
	"time"
)

// Config holds the configuration for the Google Sheets client.
type Config struct {
	SpreadsheetID      string
	ServiceAccountPath string
	ClientID           string
	ClientSecret       string
	RefreshToken       string
	CategoriesSheet    string
	ItemsSheet         string
	OrdersSheet        string
	TimeZone           string
	RetryAttempts      int
	RetryDelay         time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		CategoriesSheet: "Categories",
		ItemsSheet:      "Items",
		OrdersSheet:     "Orders",
		TimeZone:        "Asia/Kolkata",
		RetryAttempts:   3,
		RetryDelay:      time.Second,
	}
}

// Configured reports whether enough settings are present to build a client
// at all. The bot degrades to the builtin catalog and local order log when
// Sheets is unconfigured.
func (c *Config) Configured() bool {
	return c.SpreadsheetID != ""
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.SpreadsheetID == "" {
		return fmt.Errorf("spreadsheet ID is required")
	}

	hasOAuth := c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
	hasServiceAccount := c.ServiceAccountPath != ""

	if !hasOAuth && !hasServiceAccount {
		return fmt.Errorf("no authentication method configured: provide a service account path or OAuth2 credentials")
	}
	if hasOAuth && hasServiceAccount {
		return fmt.Errorf("multiple authentication methods configured; use either OAuth2 or a service account")
	}

	if c.CategoriesSheet == "" || c.ItemsSheet == "" || c.OrdersSheet == "" {
		return fmt.Errorf("sheet names cannot be empty")
	}

	if c.RetryAttempts < 0 {
		return fmt.Errorf("retry attempts cannot be negative")
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay cannot be negative")
	}

	return nil
}
