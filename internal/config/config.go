// File: internal/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort   string
	DatabasePath string
	// Static shared secret for the X-API-Key header; empty disables auth.
	APIKey string
	// Literal words masked in stored message content.
	BannedWords []string
	// Requests per rolling minute per caller identity; 0 disables limiting.
	RateLimitPerMin int
	// Pagination bounds for session listings.
	DefaultPageSize int
	MaxPageSize     int
	Environment     string
}

// Load reads configuration from environment variables or .env file.
func Load() *Config {
	env := os.Getenv("ENV")
	if strings.ToLower(env) != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found; continuing with environment variables")
		}
	}

	cfg := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		DatabasePath:    getEnv("DATABASE_PATH", "app.db"),
		APIKey:          getEnv("API_KEY", ""),
		BannedWords:     splitWords(getEnv("BANNED_WORDS", "foo,bar,baz")),
		RateLimitPerMin: getEnvAsInt("RATE_LIMIT_PER_MIN", 0),
		DefaultPageSize: getEnvAsInt("DEFAULT_PAGE_SIZE", 50),
		MaxPageSize:     getEnvAsInt("MAX_PAGE_SIZE", 100),
		Environment:     env,
	}

	// Validation for production environments
	if strings.ToLower(env) == "production" {
		missing := []string{}
		if cfg.APIKey == "" {
			missing = append(missing, "API_KEY")
		}
		if cfg.DatabasePath == "" {
			missing = append(missing, "DATABASE_PATH")
		}
		if len(missing) > 0 {
			log.Fatalf("Missing required production environment variables: %v", missing)
		}
	}

	return cfg
}

// splitWords parses a comma-separated word list, dropping blanks.
func splitWords(raw string) []string {
	parts := strings.Split(raw, ",")
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			words = append(words, p)
		}
	}
	return words
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an env var as an integer, with a fallback.
func getEnvAsInt(key string, defaultValue int) int {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(strValue)
	if err != nil {
		log.Printf("Warning: could not parse env var %s as integer. Using default value.", key)
		return defaultValue
	}
	return intValue
}
