package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/finlab/finance-lab/internal/chart"
	"github.com/finlab/finance-lab/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report with the projection chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

//go:embed templates/chart.html.tmpl
var chartTemplateSource string

//go:embed templates/ticks.js.tmpl
var ticksTemplateSource string

var templateFuncs = template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}

var htmlTemplate = mustParse("report", htmlTemplateSource)

var chartTemplate = mustParse("chart", chartTemplateSource)

// mustParse parses a page template together with the shared tick formatter script
func mustParse(name, src string) *template.Template {
	t := template.Must(template.New(name).Funcs(templateFuncs).Parse(src))
	return template.Must(t.Parse(ticksTemplateSource))
}

func (h HTMLFormatter) Format(sim *domain.Simulation) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Input       domain.ProjectionInput
		Capital     string
		Monthly     string
		Summary     []SummaryRow
		Spread      Spread
		Assumptions []string
		Chart       chart.Config
	}{sim.Input, FormatCurrency(decimal.NewFromFloat(sim.Input.Capital)), FormatCurrency(decimal.NewFromFloat(sim.Input.MonthlyContribution)), Summarize(sim), AnalyzeSpread(sim), GenerateAssumptions(sim.Input), chart.Projection(sim)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderChartPage writes a page holding a single chart.
func RenderChartPage(title string, cfg chart.Config) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Title string
		Chart chart.Config
	}{title, cfg}
	if err := chartTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
