package cfglang

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// RangeEntry is one element of a mission's range_cfg. Both bounds are
// required; there is no open-ended range.
type RangeEntry struct {
	Name string `json:"name"`
	Min  int64  `json:"min"`
	Max  int64  `json:"max"`
}

// ParseRange parses "DISTANCE:0-500 | AMOUNT:-50-100". Segments without a
// colon or without two integer bounds are dropped.
func ParseRange(text string) []RangeEntry {
	out := []RangeEntry{}
	for _, seg := range splitSegments(text) {
		if seg.bare {
			continue
		}
		lo, hi, ok := splitBounds(seg.tail)
		if !ok {
			continue
		}
		out = append(out, RangeEntry{Name: seg.name, Min: lo, Max: hi})
	}
	return out
}

// splitBounds picks the last "-" that leaves an integer on both sides. A
// minus at the very start always belongs to the lower bound.
func splitBounds(tail string) (int64, int64, bool) {
	tail = strings.TrimSpace(tail)
	for i := strings.LastIndex(tail, "-"); i > 0; i = strings.LastIndex(tail[:i], "-") {
		lo, okLo := parseInt(tail[:i])
		hi, okHi := parseInt(tail[i+1:])
		if okLo && okHi {
			return lo, hi, true
		}
	}
	return 0, 0, false
}

// SerializeRange renders entries as "DISTANCE:0-500 | AMOUNT:100-200".
func SerializeRange(entries []RangeEntry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%s:%d-%d", strings.TrimSpace(e.Name), e.Min, e.Max))
	}
	return strings.Join(parts, joinSep)
}

// NormalizeRange coerces a raw range_cfg value into entries, dropping any
// element whose min or max is missing or not an integer.
func NormalizeRange(raw gjson.Result) []RangeEntry {
	out := []RangeEntry{}
	if !raw.IsArray() {
		return out
	}
	raw.ForEach(func(_, item gjson.Result) bool {
		lo, okLo := bound(item.Get("min"))
		hi, okHi := bound(item.Get("max"))
		if okLo && okHi {
			out = append(out, RangeEntry{Name: entryName(item), Min: lo, Max: hi})
		}
		return true
	})
	return out
}

func bound(v gjson.Result) (int64, bool) {
	switch v.Type {
	case gjson.Number, gjson.String:
		return parseInt(v.String())
	default:
		return 0, false
	}
}
