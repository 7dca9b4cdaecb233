// File: internal/services/message/sanitizer.go
package message

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Sanitizer masks configured banned words in message content. Matching
// is whole-word and case-insensitive; each match is replaced by a run
// of '*' of the same rune length, so downstream character counts are
// unaffected by masking. The compiled pattern is read-only and safe to
// share across requests.
type Sanitizer struct {
	pattern *regexp.Regexp
}

// NewSanitizer compiles the banned-word list into a single matcher.
// Blank entries are dropped; an empty list yields an identity sanitizer.
func NewSanitizer(bannedWords []string) *Sanitizer {
	escaped := make([]string, 0, len(bannedWords))
	for _, w := range bannedWords {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		escaped = append(escaped, regexp.QuoteMeta(w))
	}
	if len(escaped) == 0 {
		return &Sanitizer{}
	}
	pattern := regexp.MustCompile(`(?i)\b(` + strings.Join(escaped, "|") + `)\b`)
	return &Sanitizer{pattern: pattern}
}

// Sanitize returns text with every whole-word banned-word occurrence
// replaced by an equal-length run of '*'. Partial matches inside larger
// words are left untouched.
func (s *Sanitizer) Sanitize(text string) string {
	if s.pattern == nil {
		return text
	}
	return s.pattern.ReplaceAllStringFunc(text, func(match string) string {
		return strings.Repeat("*", utf8.RuneCountInString(match))
	})
}
