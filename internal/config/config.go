package config

import (
	"errors"
	"fmt"
	"os"
)

var (
	ErrMissingClientCredentials = errors.New("OAuth client credentials are required")
	ErrMissingRedirectURI       = errors.New("OAuth redirect URI is required")
	ErrMissingSheetID           = errors.New("Google Sheet ID is required")
	ErrMissingChannelID         = errors.New("YouTube channel ID is required")
)

// Config holds the application configuration
type Config struct {
	ClientID      string
	ClientSecret  string
	RedirectURI   string
	SpreadsheetID string
	ChannelID     string
	SyncDBPath    string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		ClientID:      os.Getenv("YOUTUBE_CLIENT_ID"),
		ClientSecret:  os.Getenv("YOUTUBE_CLIENT_SECRET"),
		RedirectURI:   os.Getenv("REDIRECT_URI"),
		SpreadsheetID: os.Getenv("GOOGLE_SHEET_ID"),
		ChannelID:     os.Getenv("YOUTUBE_CHANNEL_ID"),
		// Optional: sheet sync history is disabled when unset
		SyncDBPath: os.Getenv("SYNC_DB_PATH"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.ClientID == "" || c.ClientSecret == "" {
		return fmt.Errorf("%w: set YOUTUBE_CLIENT_ID and YOUTUBE_CLIENT_SECRET", ErrMissingClientCredentials)
	}
	if c.RedirectURI == "" {
		return fmt.Errorf("%w: set REDIRECT_URI", ErrMissingRedirectURI)
	}
	if c.SpreadsheetID == "" {
		return fmt.Errorf("%w: set GOOGLE_SHEET_ID", ErrMissingSheetID)
	}
	if c.ChannelID == "" {
		return fmt.Errorf("%w: set YOUTUBE_CHANNEL_ID", ErrMissingChannelID)
	}
	return nil
}
