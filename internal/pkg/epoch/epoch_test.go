package epoch

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCalendarTimeSecondsAndMillisAgree(t *testing.T) {
	fromSeconds, ok := ToCalendarTime(float64(1700000000))
	require.True(t, ok)
	fromMillis, ok := ToCalendarTime(float64(1700000000000))
	require.True(t, ok)

	assert.True(t, fromSeconds.Equal(fromMillis))
	assert.Equal(t, time.Date(2023, time.November, 14, 22, 13, 20, 0, time.UTC), fromSeconds)
}

func TestToCalendarTimeInputs(t *testing.T) {
	want := time.Unix(1700000000, 0).UTC()

	tests := []struct {
		name string
		in   any
		ok   bool
	}{
		{"int", 1700000000, true},
		{"int64 millis", int64(1700000000000), true},
		{"numeric string", " 1700000000 ", true},
		{"json number", json.Number("1700000000000"), true},
		{"nil", nil, false},
		{"empty string", "", false},
		{"blank string", "   ", false},
		{"not numeric", "tomorrow", false},
		{"bool", true, false},
		{"array", []any{1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToCalendarTime(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestToCalendarTimeThreshold(t *testing.T) {
	atThreshold, ok := ToCalendarTime(float64(MillisThreshold))
	require.True(t, ok)
	assert.Equal(t, int64(MillisThreshold), atThreshold.Unix())

	above, ok := ToCalendarTime(float64(MillisThreshold + 1000))
	require.True(t, ok)
	assert.Equal(t, int64(MillisThreshold/1000+1), above.Unix())
}

func TestToCalendarTimeKeepsMillis(t *testing.T) {
	got, ok := ToCalendarTime(float64(1700000000123))
	require.True(t, ok)
	assert.Equal(t, 123*time.Millisecond, time.Duration(got.Nanosecond()))
}

func TestToCalendarTimeOutOfRange(t *testing.T) {
	_, ok := ToCalendarTime(1e300)
	assert.False(t, ok)
}

func TestToEpochSeconds(t *testing.T) {
	assert.Nil(t, ToEpochSeconds(nil))

	ts := time.Date(2024, time.January, 2, 3, 4, 5, 999_000_000, time.UTC)
	got := ToEpochSeconds(&ts)
	require.NotNil(t, got)
	assert.Equal(t, ts.Unix(), *got)

	before := time.Unix(-1, 500_000_000)
	assert.Equal(t, int64(-1), *ToEpochSeconds(&before))
}

func TestEpochRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1700000000, 1893456000} {
		tm, ok := ToCalendarTime(v)
		require.True(t, ok)
		assert.Equal(t, int64(v), *ToEpochSeconds(&tm))
	}
}
