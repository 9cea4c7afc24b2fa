package calc

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"plain integer", "1000", "1000"},
		{"comma decimal", "12,5", "12.5"},
		{"strips letters and symbols", "$1a2b3", "123"},
		{"collapses extra periods", "1.2.3", "1.23"},
		{"mixed separators", "1,234.56", "1.23456"},
		{"leading period", ".5", ".5"},
		{"trailing period", "5.", "5."},
		{"only separators", ".,.", "."},
		{"minus sign dropped", "-42", "42"},
		{"exponent dropped", "1e5", "15"},
		{"non-ascii digits dropped", "١٢3", "3"},
		{"whitespace dropped", " 1 000 ", "1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.raw))
		})
	}
}

func TestSanitizeIdempotentAndCanonical(t *testing.T) {
	inputs := []string{
		"", "abc", "1,2,3", "..1..2..", "9.99.9,9", "€ 1 234,56", "0.0.0", ",", "12..", "x.y.z",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once), "not idempotent for %q", in)
		assert.LessOrEqual(t, strings.Count(once, "."), 1, "too many periods for %q", in)
		for _, r := range once {
			assert.True(t, r == '.' || (r >= '0' && r <= '9'), "unexpected rune %q in %q", r, once)
		}
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"100", 100},
		{"5.", 5},
		{".5", 0.5},
		{"12abc", 12},
		{"  7.25", 7.25},
		{"-3", -3},
		{"1e3", 1000},
		{"2e", 2},
		{"1.5.6", 1.5},
		{"Infinity", math.Inf(1)},
		{"0", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseDecimal(tt.in), "ParseDecimal(%q)", tt.in)
	}

	for _, in := range []string{"", ".", "abc", "-", "+.", "e5"} {
		assert.True(t, math.IsNaN(ParseDecimal(in)), "ParseDecimal(%q) should be NaN", in)
	}
}
