// Package calc holds the pure arithmetic behind the leverage and DCA
// calculators together with the input normalization both of them rely on.
package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Sanitize normalizes free-text numeric input into a canonical decimal
// string. Anything that is not an ASCII digit, comma or period is dropped,
// commas become periods and every period after the first is removed.
//
//	Sanitize("1,234.5")  == "1.2345"
//	Sanitize("$ 12.3.4") == "12.34"
func Sanitize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == ',':
			b.WriteByte('.')
		}
	}

	parts := strings.Split(b.String(), ".")
	if len(parts) == 1 {
		return parts[0]
	}
	return parts[0] + "." + strings.Join(parts[1:], "")
}

// ParseDecimal parses the longest numeric prefix of s the way a browser's
// parseFloat does. Leading whitespace is skipped, an optional sign and
// exponent are accepted, and NaN is returned when no digits are found.
// Stored values may predate sanitization, so both engines parse through here.
func ParseDecimal(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return math.NaN()
	}

	// exponent only counts when at least one digit follows it
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}

	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		// out of range: ParseFloat already returns ±Inf or 0 with ErrRange
		if errors.Is(err, strconv.ErrRange) {
			return v
		}
		return math.NaN()
	}
	return v
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isFalsy reports whether v would be treated as "not entered": zero and NaN
// both count, so an explicit 0 is indistinguishable from an empty field.
func isFalsy(v float64) bool {
	return v == 0 || math.IsNaN(v)
}
