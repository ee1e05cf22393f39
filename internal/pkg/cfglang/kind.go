package cfglang

import (
	"fmt"
	"strings"
)

// Kind names one of the three config list variants.
type Kind string

const (
	KindNumber Kind = "number"
	KindRange  Kind = "range"
	KindString Kind = "string"
)

// ParseKind accepts the variant name in any case.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindNumber, KindRange, KindString:
		return k, nil
	default:
		return "", fmt.Errorf("unknown config kind %q", s)
	}
}
