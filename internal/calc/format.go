package calc

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Placeholders rendered instead of a result.
const (
	LeverageIdle = "SYSTEM READY"
	AverageIdle  = "WAITING DATA"
)

var enUS = message.NewPrinter(language.AmericanEnglish)

// FormatAveragePrice renders the truncated average with grouping and up to
// six fraction digits. A zero average renders as "$0".
func FormatAveragePrice(p float64) string {
	if isFalsy(p) {
		return "$0"
	}
	t := TruncateAverage(p)
	return "$" + enUS.Sprintf("%v", number.Decimal(t,
		number.MinFractionDigits(0),
		number.MaxFractionDigits(6)))
}

// FormatInvested renders a dollar total with grouping and exactly two
// fraction digits.
func FormatInvested(v float64) string {
	return "$" + enUS.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2)))
}

// FormatTokens renders a token total with grouping and at most four
// fraction digits.
func FormatTokens(v float64) string {
	return enUS.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(0),
		number.MaxFractionDigits(4)))
}

// FormatLeverage renders the rounded leverage multiple, e.g. "3x". Values
// from 1e21 up switch to exponent form ("1e+31x").
func FormatLeverage(r *LeverageResult) string {
	return formatWhole(r.RoundedLeverage) + "x"
}

func formatWhole(v float64) string {
	if math.Abs(v) >= 1e21 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatPositionSize renders an ungrouped two-decimal dollar amount.
func FormatPositionSize(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatPercent renders v with two decimals and a percent sign.
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "%"
}
