package chart

import (
	"encoding/json"
	"testing"

	"github.com/finlab/finance-lab/internal/calculation"
	"github.com/finlab/finance-lab/internal/domain"
	"github.com/finlab/finance-lab/internal/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simulate(t *testing.T, in domain.ProjectionInput) *domain.Simulation {
	t.Helper()
	sim, ok := calculation.NewSimulationEngine().Simulate(in)
	require.True(t, ok)
	return sim
}

func TestProjection_ThreeSeries(t *testing.T) {
	sim := simulate(t, domain.ProjectionInput{Capital: 1000, MonthlyContribution: 100, Years: 2, AnnualRatePercent: 5})
	cfg := Projection(sim)

	assert.Equal(t, "line", cfg.Type)
	require.Len(t, cfg.Data.Labels, 25)
	assert.Equal(t, "0.0", cfg.Data.Labels[0])
	assert.Equal(t, "0.1", cfg.Data.Labels[1])
	assert.Equal(t, "0.3", cfg.Data.Labels[3])
	assert.Equal(t, "1.3", cfg.Data.Labels[15])
	assert.Equal(t, "0.5", cfg.Data.Labels[6])
	assert.Equal(t, "2.0", cfg.Data.Labels[24])

	require.Len(t, cfg.Data.Datasets, 3)
	labels := []string{}
	for _, ds := range cfg.Data.Datasets {
		labels = append(labels, ds.Label)
		assert.Len(t, ds.Data, 25)
		assert.Equal(t, 1000.0, ds.Data[0])
		assert.Equal(t, 0.25, ds.Tension)
		assert.Zero(t, ds.PointRadius)
	}
	assert.Equal(t, []string{"Scénario pessimiste", "Scénario médian", "Scénario optimiste"}, labels)
	assert.Equal(t, "#f97373", cfg.Data.Datasets[0].BorderColor)
	assert.Equal(t, 2.0, cfg.Data.Datasets[1].BorderWidth)
	assert.Equal(t, "#38bdf8", cfg.Data.Datasets[2].BorderColor)

	assert.Equal(t, 8, cfg.Options.Scales["x"].Ticks.MaxTicksLimit)
	assert.Equal(t, TickFormatEuro, cfg.Options.Scales["y"].Ticks.Format)
	require.NotNil(t, cfg.Options.Plugins.Legend.Labels)
	assert.Equal(t, 11, cfg.Options.Plugins.Legend.Labels.Font.Size)
}

func TestAsset_SingleSeries(t *testing.T) {
	btc, err := market.NewCatalog().Find("BTC")
	require.NoError(t, err)

	cfg := Asset(btc)
	require.Len(t, cfg.Data.Datasets, 1)
	assert.Equal(t, "Bitcoin", cfg.Data.Datasets[0].Label)
	assert.Equal(t, btc.Series, cfg.Data.Datasets[0].Data)
	assert.Equal(t, []string{"T-5", "T-4", "T-3", "T-2", "T-1", "Maintenant"}, cfg.Data.Labels)

	require.NotNil(t, cfg.Options.Plugins.Legend.Display)
	assert.False(t, *cfg.Options.Plugins.Legend.Display)
}

func TestConfig_JSONShape(t *testing.T) {
	eth, err := market.NewCatalog().Find("ETH")
	require.NoError(t, err)

	b, err := json.Marshal(Asset(eth))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	data := raw["data"].(map[string]any)
	ds := data["datasets"].([]any)[0].(map[string]any)
	assert.Equal(t, "#38bdf8", ds["borderColor"])
	assert.EqualValues(t, 0, ds["pointRadius"])
	legend := raw["options"].(map[string]any)["plugins"].(map[string]any)["legend"].(map[string]any)
	assert.Equal(t, false, legend["display"])
	assert.NotContains(t, legend, "labels")
}
