// File: internal/services/message/sanitizer_test.go
package message

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizer_Sanitize(t *testing.T) {
	sanitizer := NewSanitizer([]string{"foo", "bar", "baz"})

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single banned word",
			input:    "foo is here",
			expected: "*** is here",
		},
		{
			name:     "multiple banned words keep their lengths",
			input:    "foo bar",
			expected: "*** ***",
		},
		{
			name:     "case insensitive matching",
			input:    "FOO Bar bAz",
			expected: "*** *** ***",
		},
		{
			name:     "no partial word masking",
			input:    "foobar barfoo embargo",
			expected: "foobar barfoo embargo",
		},
		{
			name:     "word adjacent to punctuation",
			input:    "I said foo!",
			expected: "I said ***!",
		},
		{
			name:     "repeated occurrences",
			input:    "bar bar bar",
			expected: "*** *** ***",
		},
		{
			name:     "clean text untouched",
			input:    "nothing to mask here",
			expected: "nothing to mask here",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, sanitizer.Sanitize(tt.input))
		})
	}
}

func TestSanitizer_EmptyBannedListIsIdentity(t *testing.T) {
	req := require.New(t)

	for _, words := range [][]string{nil, {}, {"", "  "}} {
		sanitizer := NewSanitizer(words)
		req.Equal("foo bar baz", sanitizer.Sanitize("foo bar baz"))
	}
}

func TestSanitizer_MaskLengthMatchesRuneCount(t *testing.T) {
	sanitizer := NewSanitizer([]string{"héllo"})
	require.Equal(t, "***** world", sanitizer.Sanitize("héllo world"))
}

func TestSanitizer_EscapesRegexMetacharacters(t *testing.T) {
	sanitizer := NewSanitizer([]string{"c++"})
	// The literal is escaped; no pattern explosion, and plain text survives.
	require.Equal(t, "learning go", sanitizer.Sanitize("learning go"))
}
