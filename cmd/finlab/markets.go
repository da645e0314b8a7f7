package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/finlab/finance-lab/internal/app"
	"github.com/finlab/finance-lab/internal/chart"
	"github.com/finlab/finance-lab/internal/market"
	"github.com/finlab/finance-lab/internal/output"
)

func marketsCmd(opts *globalOptions) *cobra.Command {
	var chartDir string

	cmd := &cobra.Command{
		Use:   "markets [id...]",
		Short: "Show the demo market table or the history of some assets",
		Long: `Without arguments, print the asset table followed by the default asset.
With asset ids, show each asset in turn; each chart replaces the previous one.

Prices are fictional demo values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.logger.Sync()
			if !rt.require(app.ComponentMarkets) {
				return nil
			}

			out := cmd.OutOrStdout()
			catalog := market.NewCatalog()

			var renderer chart.Renderer = chart.TextRenderer{W: out}
			if chartDir != "" {
				renderer = output.HTMLChartRenderer{Dir: chartDir, Title: "Historique de l'actif"}
			}
			view := chart.NewView(renderer)

			if len(args) == 0 {
				if err := printTable(out, catalog.Rows()); err != nil {
					return err
				}
				fmt.Fprintln(out)
				return showAsset(out, view, catalog, catalog.Default().ID)
			}
			for _, id := range args {
				if err := showAsset(out, view, catalog, id); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&chartDir, "chart-dir", "", "Write the asset chart as an HTML page in this directory")
	return cmd
}

func printTable(w io.Writer, rows []market.Row) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tActif\tType\tPrix\tVariation")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Name, r.Type, r.Price, r.Change)
	}
	return tw.Flush()
}

func showAsset(w io.Writer, view *chart.View, catalog *market.Catalog, id string) error {
	asset, err := catalog.Find(id)
	if err != nil {
		return err
	}
	d := market.NewDetail(asset)
	fmt.Fprintf(w, "%s (%s)  %s  %s\n", d.Name, d.Type, d.Price, d.Change)
	if err := view.Update(chart.Asset(asset)); err != nil {
		return err
	}
	if f, ok := view.Current().(*output.ChartFile); ok {
		fmt.Fprintf(w, "Chart written to %s\n", f.Path)
	}
	return nil
}
