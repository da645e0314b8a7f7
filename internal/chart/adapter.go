package chart

import (
	"github.com/finlab/finance-lab/internal/domain"
	"github.com/finlab/finance-lab/internal/market"
	"github.com/shopspring/decimal"
)

const (
	tickColor   = "#9ca3af"
	gridColor   = "rgba(55,65,81,0.6)"
	legendColor = "#e5e7eb"
	assetColor  = "#38bdf8"
	lineTension = 0.25
)

// TickFormatEuro and TickFormatNumber name the y-axis tick formatters.
const (
	TickFormatEuro   = "euro"
	TickFormatNumber = "number"
)

type seriesStyle struct {
	color string
	width float64
}

var scenarioStyles = map[domain.Scenario]seriesStyle{
	domain.ScenarioPessimistic: {color: "#f97373", width: 1.2},
	domain.ScenarioMedian:      {color: "#4ade80", width: 2},
	domain.ScenarioOptimistic:  {color: "#38bdf8", width: 1.4},
}

// Projection builds the three-series chart of a simulation: pessimistic, median and
// optimistic values against the elapsed time in years.
func Projection(sim *domain.Simulation) Config {
	var labels []string
	if med, ok := sim.Result(domain.ScenarioMedian); ok {
		labels = make([]string, 0, len(med.Projection.Points))
		for _, p := range med.Projection.Points {
			// half away from zero: month 3 reads 0.3, not 0.2
			labels = append(labels, decimal.NewFromFloat(p.TimeYears).StringFixed(1))
		}
	}

	datasets := make([]Dataset, 0, len(domain.Scenarios))
	for _, sc := range domain.Scenarios {
		r, ok := sim.Result(sc)
		if !ok {
			continue
		}
		values := make([]float64, 0, len(r.Projection.Points))
		for _, p := range r.Projection.Points {
			values = append(values, p.Value)
		}
		style := scenarioStyles[sc]
		datasets = append(datasets, Dataset{
			Label:       sc.Label(),
			Data:        values,
			BorderColor: style.color,
			BorderWidth: style.width,
			Tension:     lineTension,
		})
	}

	return Config{
		Type: "line",
		Data: Data{Labels: labels, Datasets: datasets},
		Options: Options{
			Responsive: true,
			Plugins: Plugins{Legend: Legend{
				Labels: &LegendLabels{Color: legendColor, Font: Font{Size: 11}},
			}},
			Scales: map[string]Axis{
				"x": {Ticks: Ticks{Color: tickColor, MaxTicksLimit: 8}, Grid: Grid{Color: gridColor}},
				"y": {Ticks: Ticks{Color: tickColor, Format: TickFormatEuro}, Grid: Grid{Color: gridColor}},
			},
		},
	}
}

// Asset builds the single-series chart of an asset history over the relative time axis.
func Asset(a domain.Asset) Config {
	hidden := false
	return Config{
		Type: "line",
		Data: Data{
			Labels: append([]string(nil), market.HistoryLabels...),
			Datasets: []Dataset{{
				Label:       a.Name,
				Data:        append([]float64(nil), a.Series...),
				BorderColor: assetColor,
				BorderWidth: 2,
				Tension:     lineTension,
			}},
		},
		Options: Options{
			Responsive: true,
			Plugins:    Plugins{Legend: Legend{Display: &hidden}},
			Scales: map[string]Axis{
				"x": {Ticks: Ticks{Color: tickColor}, Grid: Grid{Color: gridColor}},
				"y": {Ticks: Ticks{Color: tickColor, Format: TickFormatNumber}, Grid: Grid{Color: gridColor}},
			},
		},
	}
}
