// File: internal/dtos/message_test.go
package dtos

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAPITime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "rfc3339 utc",
			input:    `"2023-06-15T14:30:00Z"`,
			expected: time.Date(2023, 6, 15, 14, 30, 0, 0, time.UTC),
		},
		{
			name:     "zoned input converted to utc",
			input:    `"2023-06-15T16:30:00+02:00"`,
			expected: time.Date(2023, 6, 15, 14, 30, 0, 0, time.UTC),
		},
		{
			name:     "naive input treated as utc",
			input:    `"2023-06-15T14:30:00"`,
			expected: time.Date(2023, 6, 15, 14, 30, 0, 0, time.UTC),
		},
		{
			name:     "naive input with fraction",
			input:    `"2023-06-15T14:30:00.5"`,
			expected: time.Date(2023, 6, 15, 14, 30, 0, 500000000, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts APITime
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ts))
			require.True(t, ts.Equal(tt.expected), "got %v, want %v", ts.Time, tt.expected)
			require.Equal(t, time.UTC, ts.Location())
		})
	}
}

func TestAPITime_UnmarshalJSON_Invalid(t *testing.T) {
	for _, input := range []string{`"yesterday"`, `""`, `null`, `"2023-13-45T99:99:99Z"`} {
		var ts APITime
		require.Error(t, json.Unmarshal([]byte(input), &ts), "input %s", input)
	}
}

func TestAPITime_MarshalJSON_AlwaysUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	ts := APITime{time.Date(2023, 6, 15, 16, 30, 0, 0, loc)}

	out, err := json.Marshal(ts)
	require.NoError(t, err)
	require.Equal(t, `"2023-06-15T14:30:00Z"`, string(out))
}

func TestEnvelopes(t *testing.T) {
	req := require.New(t)

	success, err := json.Marshal(NewSuccessResponse([]string{}))
	req.NoError(err)
	req.JSONEq(`{"status":"success","data":[]}`, string(success))

	failure, err := json.Marshal(NewErrorResponse("DUPLICATE_MESSAGE_ID", "message_id already exists", ""))
	req.NoError(err)
	req.JSONEq(`{"status":"error","error":{"code":"DUPLICATE_MESSAGE_ID","message":"message_id already exists"}}`, string(failure))
}
