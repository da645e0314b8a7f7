package output_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/finlab/finance-lab/internal/calculation"
	"github.com/finlab/finance-lab/internal/chart"
	"github.com/finlab/finance-lab/internal/domain"
	"github.com/finlab/finance-lab/internal/market"
	"github.com/finlab/finance-lab/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simulate(t *testing.T) *domain.Simulation {
	t.Helper()
	sim, ok := calculation.NewSimulationEngine().Simulate(domain.ProjectionInput{
		Capital: 10000, Years: 1, AnnualRatePercent: 0,
	})
	require.True(t, ok)
	return sim
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Render(&buf, simulate(t), "csv-summary"))
	assert.Contains(t, buf.String(), "median,0.00,10000.00,10000.00,0.00")
}

func TestLookup_Unsupported(t *testing.T) {
	_, err := output.Lookup("pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, output.ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "Try one of: console, csv, detailed-csv, html, json")

	var buf bytes.Buffer
	assert.ErrorIs(t, output.Render(&buf, simulate(t), "pdf"), output.ErrUnsupportedFormat)
}

func TestGenerateReport_JSON_CSV(t *testing.T) {
	dir := t.TempDir()
	for _, format := range []string{"json", "csv", "html"} {
		path, err := output.GenerateReport(simulate(t), format, dir)
		require.NoError(t, err, format)
		assert.Equal(t, "."+format, filepath.Ext(path))
	}
}

func TestHTMLChartRenderer_ReleaseRemovesFile(t *testing.T) {
	dir := t.TempDir()
	view := chart.NewView(output.HTMLChartRenderer{Dir: dir, Title: "Marché"})
	cat := market.NewCatalog()

	require.NoError(t, view.Update(chart.Asset(cat.Default())))
	first := view.Current().(*output.ChartFile).Path
	page, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Contains(t, string(page), "<h1>Marché</h1>")

	btc, err := cat.Find("BTC")
	require.NoError(t, err)
	require.NoError(t, view.Update(chart.Asset(btc)))
	second := view.Current().(*output.ChartFile).Path
	assert.NotEqual(t, first, second)
	_, err = os.Stat(first)
	assert.True(t, os.IsNotExist(err), "replaced chart file should be removed")

	require.NoError(t, view.Close())
	_, err = os.Stat(second)
	assert.True(t, os.IsNotExist(err))
}
