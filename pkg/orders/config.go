package orders

import (
	"errors"
	"time"
)

// Config holds the upstream order-creation endpoint configuration.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Validate checks the configuration for required fields
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base URL is required")
	}
	return nil
}
