package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finlab/finance-lab/internal/app"
	"github.com/finlab/finance-lab/internal/calculation"
	"github.com/finlab/finance-lab/internal/chart"
	"github.com/finlab/finance-lab/internal/output"
)

func simulateCmd(opts *globalOptions) *cobra.Command {
	var (
		capital, monthly, rate float64
		years                  int
		format, outputDir      string
		sparkline              bool
		width                  int
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Project an investment under pessimistic, median and optimistic rates",
		Long: `Project an initial capital plus a monthly contribution with monthly
compounding, at the median annual rate and at 2 points below and above it.

Nothing is printed when the capital or the number of years is missing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.logger.Sync()
			if !rt.require(app.ComponentSimulation) {
				return nil
			}

			input := rt.cfg.Defaults
			flags := cmd.Flags()
			if flags.Changed("capital") {
				input.Capital = capital
			}
			if flags.Changed("monthly") {
				input.MonthlyContribution = monthly
			}
			if flags.Changed("years") {
				input.Years = years
			}
			if flags.Changed("rate") {
				input.AnnualRatePercent = rate
			}

			engine := calculation.NewSimulationEngine()
			engine.SetLogger(rt.logger.Sugar())
			sim, ok := engine.Simulate(input)
			if !ok {
				return nil
			}

			if outputDir != "" {
				path, err := output.GenerateReport(sim, format, outputDir)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
			} else if err := output.Render(cmd.OutOrStdout(), sim, format); err != nil {
				return err
			}

			if sparkline {
				view := chart.NewView(chart.TextRenderer{W: cmd.OutOrStdout(), Width: width})
				defer view.Close()
				fmt.Fprintln(cmd.OutOrStdout())
				return view.Update(chart.Projection(sim))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&capital, "capital", 0, "Initial capital in euros (default from config)")
	f.Float64Var(&monthly, "monthly", 0, "Monthly contribution in euros (default from config)")
	f.IntVar(&years, "years", 0, "Investment horizon in years (default from config)")
	f.Float64Var(&rate, "rate", 0, "Median annual rate in percent (default from config)")
	f.StringVarP(&format, "format", "f", "console", fmt.Sprintf("Output format %v", output.AvailableFormatterNames()))
	f.StringVarP(&outputDir, "output-dir", "o", "", "Write the report to a file in this directory instead of stdout")
	f.BoolVar(&sparkline, "chart", false, "Print a sparkline per scenario after the report")
	f.IntVar(&width, "chart-width", 60, "Maximum sparkline width")
	return cmd
}
