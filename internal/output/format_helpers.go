package output

import (
	"strconv"

	fmtdec "github.com/finlab/finance-lab/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as whole euros the fr-FR way ("2 200 €").
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return fmtdec.FormatEuro(amount) }

// FormatPercentage formats a rate in percent with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + " %" }

func intToString(i int) string { return strconv.Itoa(i) }

func floatToString(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }
