package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAveragePrice(t *testing.T) {
	assert.Equal(t, "$0", FormatAveragePrice(0))
	assert.Equal(t, "$100", FormatAveragePrice(100))
	assert.Equal(t, "$0.666666", FormatAveragePrice(2.0/3.0))
	assert.Equal(t, "$1,234.5", FormatAveragePrice(1234.5))
}

func TestFormatTotals(t *testing.T) {
	assert.Equal(t, "$400.00", FormatInvested(400))
	assert.Equal(t, "$1,250.50", FormatInvested(1250.5))
	assert.Equal(t, "4", FormatTokens(4))
	assert.Equal(t, "12,000.25", FormatTokens(12000.25))
}

func TestFormatLeverageFields(t *testing.T) {
	res := &LeverageResult{RoundedLeverage: 3, PositionSize: 2500, RiskPercent: 5}
	assert.Equal(t, "3x", FormatLeverage(res))
	assert.Equal(t, "$2500.00", FormatPositionSize(res.PositionSize))
	assert.Equal(t, "5.00%", FormatPercent(res.RiskPercent))
}

func TestFormatLeverageLargeValues(t *testing.T) {
	tests := []struct {
		rounded float64
		want    string
	}{
		{1, "1x"},
		{1234567, "1234567x"},
		{1e20, "100000000000000000000x"},
		{1e21, "1e+21x"},
		{1e31, "1e+31x"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatLeverage(&LeverageResult{RoundedLeverage: tt.rounded}))
	}
}
