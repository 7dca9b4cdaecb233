// File: internal/ratelimit/ratelimit.go
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Config holds rate limiting configuration
type Config struct {
	WindowSize    time.Duration // Rolling window for counting hits
	MaxHits       int           // Maximum hits per window
	CleanupPeriod time.Duration // How often to clean up idle entries
}

// PerMinuteConfig returns a rolling one-minute window allowing maxHits
// requests per identity.
func PerMinuteConfig(maxHits int) *Config {
	return &Config{
		WindowSize:    time.Minute,
		MaxHits:       maxHits,
		CleanupPeriod: 5 * time.Minute,
	}
}

// hitWindow tracks the recent hit timestamps for one identifier.
type hitWindow struct {
	hits []time.Time
}

// MemoryRateLimiter implements in-memory sliding-window rate limiting.
// It is an injected component, not process-wide state, so instances can
// be scoped and tested independently.
type MemoryRateLimiter struct {
	config  *Config
	windows map[string]*hitWindow
	mu      sync.Mutex
	stopCh  chan struct{}
}

// RateLimitInfo contains information about rate limit status
type RateLimitInfo struct {
	Allowed    bool
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// NewMemoryRateLimiter creates a new in-memory rate limiter
func NewMemoryRateLimiter(config *Config) *MemoryRateLimiter {
	limiter := &MemoryRateLimiter{
		config:  config,
		windows: make(map[string]*hitWindow),
		stopCh:  make(chan struct{}),
	}

	// Start cleanup goroutine
	go limiter.cleanupLoop()

	return limiter
}

// Allow checks whether a request from the identifier fits in its
// rolling window, recording the hit when it does.
func (rl *MemoryRateLimiter) Allow(identifier string) (bool, *RateLimitInfo) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-rl.config.WindowSize)

	window, exists := rl.windows[identifier]
	if !exists {
		window = &hitWindow{}
		rl.windows[identifier] = window
	}

	// Drop hits that have slid out of the window
	kept := window.hits[:0]
	for _, hit := range window.hits {
		if hit.After(cutoff) {
			kept = append(kept, hit)
		}
	}
	window.hits = kept

	if len(window.hits) >= rl.config.MaxHits {
		oldest := window.hits[0]
		retryAfter := oldest.Add(rl.config.WindowSize).Sub(now)
		return false, &RateLimitInfo{
			Allowed:    false,
			Remaining:  0,
			ResetTime:  oldest.Add(rl.config.WindowSize),
			RetryAfter: retryAfter,
		}
	}

	window.hits = append(window.hits, now)
	return true, &RateLimitInfo{
		Allowed:   true,
		Remaining: rl.config.MaxHits - len(window.hits),
		ResetTime: window.hits[0].Add(rl.config.WindowSize),
	}
}

// cleanupLoop periodically removes idle identifiers
func (rl *MemoryRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.config.CleanupPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCh:
			return
		}
	}
}

// cleanup removes identifiers whose every hit has expired
func (rl *MemoryRateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-rl.config.WindowSize)
	for identifier, window := range rl.windows {
		idle := true
		for _, hit := range window.hits {
			if hit.After(cutoff) {
				idle = false
				break
			}
		}
		if idle {
			delete(rl.windows, identifier)
		}
	}
}

// Close stops the cleanup goroutine
func (rl *MemoryRateLimiter) Close() {
	close(rl.stopCh)
}

// GetClientIP extracts the real client IP from request
func GetClientIP(r *http.Request) string {
	// Check for forwarded IP (behind proxy/load balancer)
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		if ip := parseFirstIP(forwarded); ip != "" {
			return ip
		}
	}

	// Check for real IP header
	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	// Fall back to remote address
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// parseFirstIP extracts the first valid IP from a comma-separated list
func parseFirstIP(forwarded string) string {
	if forwarded == "" {
		return ""
	}

	ips := strings.Split(forwarded, ",")
	if len(ips) > 0 {
		return strings.TrimSpace(ips[0])
	}
	return ""
}
