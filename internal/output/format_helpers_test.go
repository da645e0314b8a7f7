package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1234.567, "1\u202f235 €"},
		{0, "0 €"},
		{2199.5, "2\u202f200 €"},
		{-150.4, "-150 €"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(decimal.NewFromFloat(tt.in)), "amount %v", tt.in)
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "12.35 %", FormatPercentage(decimal.NewFromFloat(12.3456)))
	assert.Equal(t, "3.00 %", FormatPercentage(decimal.NewFromInt(3)))
}

func TestStringHelpers(t *testing.T) {
	assert.Equal(t, "42", intToString(42))
	assert.Equal(t, "0.08", floatToString(1.0/12))
	assert.Equal(t, "17175.24", floatToString(17175.23744225705))
}
