// Package chart adapts projections and asset histories to Chart.js line-chart
// configurations, and owns the per-view chart handles that display them.
package chart

// Config is a Chart.js chart configuration
type Config struct {
	Type    string  `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

// Data holds the x labels and the plotted series
type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one plotted series
type Dataset struct {
	Label       string    `json:"label"`
	Data        []float64 `json:"data"`
	BorderColor string    `json:"borderColor"`
	BorderWidth float64   `json:"borderWidth"`
	Tension     float64   `json:"tension"`
	PointRadius float64   `json:"pointRadius"`
}

// Options holds the subset of Chart.js options used by the lab
type Options struct {
	Responsive bool            `json:"responsive"`
	Plugins    Plugins         `json:"plugins"`
	Scales     map[string]Axis `json:"scales"`
}

// Plugins configures the legend
type Plugins struct {
	Legend Legend `json:"legend"`
}

// Legend configures legend visibility and label style
type Legend struct {
	Display *bool         `json:"display,omitempty"`
	Labels  *LegendLabels `json:"labels,omitempty"`
}

// LegendLabels styles the legend entries
type LegendLabels struct {
	Color string `json:"color"`
	Font  Font   `json:"font"`
}

// Font is a Chart.js font spec
type Font struct {
	Size int `json:"size"`
}

// Axis configures one scale
type Axis struct {
	Ticks Ticks `json:"ticks"`
	Grid  Grid  `json:"grid"`
}

// Ticks styles the tick labels. Format names the client-side tick formatter
// ("euro" or "number"); it is not a Chart.js key and is resolved by the page script.
type Ticks struct {
	Color         string `json:"color"`
	MaxTicksLimit int    `json:"maxTicksLimit,omitempty"`
	Format        string `json:"format,omitempty"`
}

// Grid styles the grid lines
type Grid struct {
	Color string `json:"color"`
}
