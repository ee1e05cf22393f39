package cfglang

import (
	"slices"
	"strings"

	"github.com/tidwall/gjson"
)

// StringEntry is one element of a mission's list_string_cfg.
type StringEntry struct {
	Name   string   `json:"name"`
	Values []string `json:"value"`
}

func (e StringEntry) Clone() StringEntry {
	return StringEntry{Name: e.Name, Values: slices.Clone(e.Values)}
}

// ParseString parses "CITY: HCM, HN | SOURCE". Values are kept verbatim
// after trimming.
func ParseString(text string) []StringEntry {
	out := []StringEntry{}
	for _, seg := range splitSegments(text) {
		values := []string{}
		if !seg.bare {
			values = splitList(seg.tail)
		}
		out = append(out, StringEntry{Name: seg.name, Values: values})
	}
	return out
}

// SerializeString renders entries as "CITY: HCM, HN | SOURCE:". Unlike the
// number form, values are separated by comma and space.
func SerializeString(entries []StringEntry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		values := cleanStrings(e.Values)
		if len(values) == 0 {
			parts = append(parts, name+":")
			continue
		}
		parts = append(parts, name+": "+strings.Join(values, ", "))
	}
	return strings.Join(parts, joinSep)
}

// NormalizeString coerces a raw list_string_cfg value into entries.
func NormalizeString(raw gjson.Result) []StringEntry {
	out := []StringEntry{}
	if !raw.IsArray() {
		return out
	}
	raw.ForEach(func(_, item gjson.Result) bool {
		out = append(out, StringEntry{
			Name:   entryName(item),
			Values: valueTokens(item.Get("value")),
		})
		return true
	})
	return out
}

func cleanStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
