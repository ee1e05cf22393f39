// Package cfglang implements the compact text forms operators type for
// mission config lists, e.g. "DISTANCE:0-500 | AMOUNT:100-200".
//
// Every function in the package is total: malformed fragments are dropped
// and only the well-formed subset of the input survives.
package cfglang

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	segmentSep = "|"
	joinSep    = " | "
)

var intPattern = regexp.MustCompile(`^-?[0-9]+$`)

// segment is one "|"-separated piece of input. bare segments carry no colon.
type segment struct {
	name string
	tail string
	bare bool
}

func splitSegments(text string) []segment {
	var out []segment
	for _, part := range strings.Split(text, segmentSep) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		// Only the first colon separates the name; the tail keeps the rest.
		name, tail, found := strings.Cut(part, ":")
		if !found {
			out = append(out, segment{name: part, bare: true})
			continue
		}
		out = append(out, segment{name: strings.TrimSpace(name), tail: tail})
	}
	return out
}

// parseInt accepts an optional leading minus followed by ASCII digits.
func parseInt(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if !intPattern.MatchString(s) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// splitList splits on commas, trims every token and drops empty ones.
func splitList(s string) []string {
	out := []string{}
	for _, tok := range strings.Split(s, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
