// File: internal/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	req := require.New(t)

	cfg := Load()
	req.Equal("8080", cfg.ServerPort)
	req.Equal("app.db", cfg.DatabasePath)
	req.Empty(cfg.APIKey)
	req.Equal([]string{"foo", "bar", "baz"}, cfg.BannedWords)
	req.Zero(cfg.RateLimitPerMin)
	req.Equal(50, cfg.DefaultPageSize)
	req.Equal(100, cfg.MaxPageSize)
}

func TestLoad_FromEnvironment(t *testing.T) {
	req := require.New(t)

	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("BANNED_WORDS", " alpha, beta ,,gamma ")
	t.Setenv("RATE_LIMIT_PER_MIN", "120")
	t.Setenv("MAX_PAGE_SIZE", "not-a-number")

	cfg := Load()
	req.Equal("9090", cfg.ServerPort)
	req.Equal([]string{"alpha", "beta", "gamma"}, cfg.BannedWords)
	req.Equal(120, cfg.RateLimitPerMin)
	// Unparseable integers fall back to the default.
	req.Equal(100, cfg.MaxPageSize)
}
