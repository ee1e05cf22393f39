package cfglang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []StringEntry
	}{
		{"empty input", "", []StringEntry{}},
		{"bare segment", "FOO", []StringEntry{{Name: "FOO", Values: []string{}}}},
		{"values trimmed", "CITY:  HCM ,HN,, ", []StringEntry{{Name: "CITY", Values: []string{"HCM", "HN"}}}},
		{"numbers kept as text", "SOURCE: 1, 2.5, abc", []StringEntry{{Name: "SOURCE", Values: []string{"1", "2.5", "abc"}}}},
		{
			"two segments",
			"CITY: HCM | WARD",
			[]StringEntry{{Name: "CITY", Values: []string{"HCM"}}, {Name: "WARD", Values: []string{}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseString(tt.in))
		})
	}
}

// Colons after the first one belong to the values, not to the name.
func TestParseStringKeepsColonsInTail(t *testing.T) {
	got := ParseString("SOURCE: https://a.example/x, 10:30 | TIME:08:00")
	assert.Equal(t, []StringEntry{
		{Name: "SOURCE", Values: []string{"https://a.example/x", "10:30"}},
		{Name: "TIME", Values: []string{"08:00"}},
	}, got)
}

func TestSerializeString(t *testing.T) {
	got := SerializeString([]StringEntry{
		{Name: "CITY", Values: []string{"HCM", " HN "}},
		{Name: "WARD"},
		{Name: "SOURCE", Values: []string{" ", ""}},
	})
	assert.Equal(t, "CITY: HCM, HN | WARD: | SOURCE:", got)
}

func TestStringRoundTrip(t *testing.T) {
	entries := []StringEntry{
		{Name: "SERVICE_GROUP", Values: []string{"BIKE", "CAR"}},
		{Name: "USER_PARTNER", Values: []string{}},
		{Name: "SOURCE", Values: []string{"app:v2", "web"}},
	}
	assert.Equal(t, entries, ParseString(SerializeString(entries)))
}

func TestStringSerializeIsFixedPoint(t *testing.T) {
	for _, in := range []string{"A: x ,y| B", "|A:|", "A: a:b:c, d"} {
		once := SerializeString(ParseString(in))
		assert.Equal(t, once, SerializeString(ParseString(once)), in)
	}
}
