// File: internal/services/messaging/config.go
package messaging

import "fmt"

type Config struct {
	// MaxSnapshotTextLength caps the conversation preview text. The cap is
	// applied at snapshot time only; stored messages keep their full text.
	MaxSnapshotTextLength int
}

func DefaultConfig() *Config {
	return &Config{
		MaxSnapshotTextLength: 2000,
	}
}

func (c *Config) Validate() error {
	if c.MaxSnapshotTextLength <= 0 {
		return fmt.Errorf("max snapshot text length must be positive")
	}
	return nil
}
