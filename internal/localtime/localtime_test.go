package localtime

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppauth/internal/errors"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		zone     string
		expected time.Time
	}{
		{
			name:     "new york standard time",
			value:    "2024-01-01 00:00:00",
			zone:     "America/New_York",
			expected: time.Date(2024, 1, 1, 5, 0, 0, 0, time.UTC),
		},
		{
			name:     "new york daylight time",
			value:    "2024-07-01 12:00:00",
			zone:     "America/New_York",
			expected: time.Date(2024, 7, 1, 16, 0, 0, 0, time.UTC),
		},
		{
			name:     "empty zone defaults to utc",
			value:    "2024-01-01 00:00:00",
			zone:     "",
			expected: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "explicit utc",
			value:    "2024-06-15 23:59:59",
			zone:     "UTC",
			expected: time.Date(2024, 6, 15, 23, 59, 59, 0, time.UTC),
		},
		{
			name:     "positive offset zone",
			value:    "2024-01-01 12:00:00",
			zone:     "Europe/Paris",
			expected: time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC),
		},
		{
			name:     "half hour offset without dst",
			value:    "2024-03-10 02:30:00",
			zone:     "Asia/Kolkata",
			expected: time.Date(2024, 3, 9, 21, 0, 0, 0, time.UTC),
		},
		{
			name:     "just after spring forward",
			value:    "2024-03-10 03:00:00",
			zone:     "America/New_York",
			expected: time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.value, tt.zone)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestResolve_SpringForwardGap(t *testing.T) {
	_, err := Resolve("2024-03-10 02:30:00", "America/New_York")
	require.Error(t, err)

	var ambiguous *errors.AmbiguousLocalTimeError
	require.True(t, stderrors.As(err, &ambiguous))
	assert.Equal(t, errors.ReasonNonexistent, ambiguous.Reason)
	assert.Equal(t, "America/New_York", ambiguous.Zone)
}

func TestResolve_FallBackOverlap(t *testing.T) {
	_, err := Resolve("2024-11-03 01:30:00", "America/New_York")
	require.Error(t, err)

	var ambiguous *errors.AmbiguousLocalTimeError
	require.True(t, stderrors.As(err, &ambiguous))
	assert.Equal(t, errors.ReasonAmbiguous, ambiguous.Reason)
}

func TestResolve_InvalidTimezone(t *testing.T) {
	_, err := Resolve("2024-01-01 00:00:00", "Mars/Olympus_Mons")
	require.Error(t, err)

	assert.ErrorIs(t, err, errors.ErrInvalidTimezone)
	assert.NotErrorIs(t, err, errors.ErrAmbiguousTime)
}

func TestResolve_MalformedValue(t *testing.T) {
	tests := []string{
		"",
		"2024-01-01T00:00:00Z",
		"2024-13-01 00:00:00",
		"01/01/2024 00:00:00",
	}

	for _, value := range tests {
		t.Run(value, func(t *testing.T) {
			_, err := Resolve(value, "UTC")
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrParse)
		})
	}
}

func TestLoadZone_DefaultsToUTC(t *testing.T) {
	loc, err := LoadZone("")
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}
