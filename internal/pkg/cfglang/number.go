package cfglang

import (
	"slices"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// NumberEntry is one element of a mission's list_number_cfg.
type NumberEntry struct {
	Name   string  `json:"name"`
	Values []int64 `json:"value"`
}

// Clone returns a copy that shares no memory with e.
func (e NumberEntry) Clone() NumberEntry {
	return NumberEntry{Name: e.Name, Values: slices.Clone(e.Values)}
}

// ParseNumber parses "NAME: 1,2 | OTHER". Tokens that are not integers are
// skipped; a segment without a colon yields an entry with no values.
func ParseNumber(text string) []NumberEntry {
	out := []NumberEntry{}
	for _, seg := range splitSegments(text) {
		values := []int64{}
		if !seg.bare {
			for _, tok := range strings.Split(seg.tail, ",") {
				if n, ok := parseInt(tok); ok {
					values = append(values, n)
				}
			}
		}
		out = append(out, NumberEntry{Name: seg.name, Values: values})
	}
	return out
}

// SerializeNumber renders entries as "NAME: 1,2 | OTHER:".
func SerializeNumber(entries []NumberEntry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if len(e.Values) == 0 {
			parts = append(parts, name+":")
			continue
		}
		vals := make([]string, len(e.Values))
		for i, v := range e.Values {
			vals[i] = strconv.FormatInt(v, 10)
		}
		parts = append(parts, name+": "+strings.Join(vals, ","))
	}
	return strings.Join(parts, joinSep)
}

// NormalizeNumber coerces a raw list_number_cfg value into entries. Values
// that are not integral numbers are dropped.
func NormalizeNumber(raw gjson.Result) []NumberEntry {
	out := []NumberEntry{}
	if !raw.IsArray() {
		return out
	}
	raw.ForEach(func(_, item gjson.Result) bool {
		values := []int64{}
		for _, tok := range valueTokens(item.Get("value")) {
			if n, ok := parseInt(tok); ok {
				values = append(values, n)
			}
		}
		out = append(out, NumberEntry{Name: entryName(item), Values: values})
		return true
	})
	return out
}
