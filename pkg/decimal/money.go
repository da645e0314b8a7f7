package decimal

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// fr-FR number formatting: narrow no-break space between thousands, comma before decimals.
const (
	thousandSeparator = "\u202f"
	decimalSeparator  = ","
	euroGrapheme      = "€"
)

var (
	// euroFormatter renders whole euros, "12 345 €"
	euroFormatter = money.NewFormatter(0, decimalSeparator, thousandSeparator, euroGrapheme, "1 $")
	// groupFormatter renders a grouped integer with no symbol, "12 345"
	groupFormatter = money.NewFormatter(0, decimalSeparator, thousandSeparator, "", "1")
)

// Money represents a euro amount with decimal precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the amount to whole euros, half away from zero
func (m Money) Round() Money {
	return Money{m.Decimal.Round(0)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Equal checks if this amount equals another
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the plain decimal representation with cents
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the amount the way the fr-FR locale displays euros with no decimals: "2 200 €"
func (m Money) Format() string {
	whole := m.Round()
	if !whole.BigInt().IsInt64() {
		return groupDigits(whole.Decimal) + " " + euroGrapheme
	}
	return euroFormatter.Format(whole.IntPart())
}

// groupDigits groups an integral decimal of any size by thousands.
// go-money formats int64 amounts only.
func groupDigits(d decimal.Decimal) string {
	if d.BigInt().IsInt64() {
		return groupFormatter.Format(d.IntPart())
	}
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	digits := d.BigInt().String()
	var b strings.Builder
	b.WriteString(sign)
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(thousandSeparator)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatEuro formats a decimal amount as whole euros
func FormatEuro(d decimal.Decimal) string {
	return NewMoneyFromDecimal(d).Format()
}

// FormatNumber formats a number with fr-FR grouping and up to three decimals, trailing zeros dropped.
func FormatNumber(d decimal.Decimal) string {
	d = d.Round(3)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	whole := d.Truncate(0)
	out := sign + groupDigits(whole)

	frac := d.Sub(whole)
	if frac.IsZero() {
		return out
	}
	digits := strings.TrimPrefix(frac.String(), "0.")
	return out + decimalSeparator + digits
}

// FormatSignedPercent formats a percent change with two decimals and an explicit plus sign
// for non-negative values: "+0.32 %", "-0.80 %".
func FormatSignedPercent(d decimal.Decimal) string {
	s := d.StringFixed(2)
	if !d.IsNegative() {
		s = "+" + s
	}
	return s + " %"
}
