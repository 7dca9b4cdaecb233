// File: internal/services/message/config.go
package message

import "fmt"

type Config struct {
	// Content filtering
	BannedWords []string // literal words masked in stored content

	// Pagination bounds for session listings
	DefaultPageSize int
	MaxPageSize     int
}

func (c *Config) Validate() error {
	if c.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be positive")
	}
	if c.MaxPageSize <= 0 {
		return fmt.Errorf("max_page_size must be positive")
	}
	if c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("default_page_size cannot exceed max_page_size")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		BannedWords:     nil,
		DefaultPageSize: 50,
		MaxPageSize:     100,
	}
}
