package businesstime

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	r, err := ParseRange("2024-01-01", "2024-01-07")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), r.End)
	assert.False(t, r.Reversed())
}

func TestParseRange_Malformed(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		wantField string
		wantValue string
	}{
		{"bad start", "2024-13-01", "2024-01-07", "start date", "2024-13-01"},
		{"bad end", "2024-01-01", "07/01/2024", "end date", "07/01/2024"},
		{"empty start", "", "2024-01-07", "start date", ""},
		{"empty end", "2024-01-01", "", "end date", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRange(tt.start, tt.end)
			require.Error(t, err)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr), "expected *ParseError, got %T", err)
			assert.Equal(t, tt.wantField, parseErr.Field)
			assert.Equal(t, tt.wantValue, parseErr.Value)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestEnumerateDays(t *testing.T) {
	days, err := EnumerateDays("2024-01-01", "2024-01-07")
	require.NoError(t, err)
	require.Len(t, days, 7)

	for i, day := range days {
		assert.Equal(t, 1+i, day.Day())
	}
}

func TestEnumerateDays_Reversed(t *testing.T) {
	days, err := EnumerateDays("2024-01-07", "2024-01-01")
	require.NoError(t, err)
	assert.Empty(t, days)

	r, err := ParseRange("2024-01-07", "2024-01-01")
	require.NoError(t, err)
	assert.True(t, r.Reversed())
}

func TestEnumerateDays_MalformedProducesNoDays(t *testing.T) {
	days, err := EnumerateDays("2024-01-01", "garbage")
	require.Error(t, err)
	assert.Nil(t, days)
}
