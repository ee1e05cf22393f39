// internal/pkg/epoch/epoch.go
package epoch

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// MillisThreshold is the magnitude above which an epoch value is read as
// milliseconds. Second-based values for realistic campaign dates stay below it.
const MillisThreshold = 10_000_000_000

// maxMillis mirrors the largest instant a JS Date can hold (±100,000,000 days).
const maxMillis = 8.64e15

// ToCalendarTime converts an epoch value in seconds or milliseconds to a UTC
// time. It reports false when v is absent, empty or not numeric.
func ToCalendarTime(v any) (time.Time, bool) {
	f, ok := toFloat(v)
	if !ok {
		return time.Time{}, false
	}

	ms := f * 1000
	if math.Abs(f) > MillisThreshold {
		ms = f
	}
	if math.Abs(ms) > maxMillis {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)).UTC(), true
}

// ToEpochSeconds returns t as whole seconds since the epoch, rounded down.
// A nil time stays nil.
func ToEpochSeconds(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	secs := t.Unix()
	return &secs
}

func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		return toFloat(string(n))
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
