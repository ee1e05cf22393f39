package cfglang

import (
	"strings"

	"github.com/tidwall/gjson"
)

// entryName reads the "name" field of a raw entry. Anything that is not an
// object, or has no usable name, degrades to "".
func entryName(item gjson.Result) string {
	name := item.Get("name")
	switch name.Type {
	case gjson.String, gjson.Number, gjson.True, gjson.False:
		return strings.TrimSpace(name.String())
	default:
		return ""
	}
}

// valueTokens flattens a raw "value" field into trimmed string tokens:
//
//	"a, b"     -> [a b]
//	["a", 1]   -> [a 1]
//	7          -> [7]
//	null/absent -> []
func valueTokens(v gjson.Result) []string {
	switch {
	case !v.Exists() || v.Type == gjson.Null:
		return []string{}
	case v.Type == gjson.String:
		return splitList(v.Str)
	case v.IsArray():
		out := []string{}
		v.ForEach(func(_, el gjson.Result) bool {
			if el.Type == gjson.Null {
				return true
			}
			if tok := strings.TrimSpace(el.String()); tok != "" {
				out = append(out, tok)
			}
			return true
		})
		return out
	default:
		return []string{strings.TrimSpace(v.String())}
	}
}
