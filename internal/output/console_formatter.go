package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/finlab/finance-lab/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter provides a concise console summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(sim *domain.Simulation) ([]byte, error) {
	var buf bytes.Buffer
	in := sim.Input
	fmt.Fprintln(&buf, "SIMULATION D'INVESTISSEMENT")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Capital initial:     %s\n", FormatCurrency(decimal.NewFromFloat(in.Capital)))
	fmt.Fprintf(&buf, "Versement mensuel:   %s\n", FormatCurrency(decimal.NewFromFloat(in.MonthlyContribution)))
	fmt.Fprintf(&buf, "Horizon:             %d ans\n", in.Years)
	fmt.Fprintln(&buf)

	for _, row := range Summarize(sim) {
		fmt.Fprintf(&buf, "%s (%s)\n", row.Label, row.Rate)
		fmt.Fprintln(&buf, strings.Repeat("-", 32))
		fmt.Fprintf(&buf, "  Investi:      %s\n", row.Invested)
		fmt.Fprintf(&buf, "  Valeur:       %s\n", row.Value)
		fmt.Fprintf(&buf, "  Performance:  %s\n", row.Performance)
	}

	spread := AnalyzeSpread(sim)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Écart optimiste / pessimiste: %s\n", FormatCurrency(spread.Range))
	fmt.Fprintf(&buf, "Gain médian: %s\n", FormatPercentage(spread.MedianGainPercent))
	return buf.Bytes(), nil
}
