package server

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/finlab/finance-lab/internal/app"
	"github.com/finlab/finance-lab/internal/chart"
	"github.com/finlab/finance-lab/internal/domain"
	"github.com/finlab/finance-lab/internal/market"
)

//go:embed templates/index.html.tmpl
var pageSource string

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"json": func(v any) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(pageSource))

type pageData struct {
	Simulation bool
	Markets    bool
	Chatbot    bool
	Defaults   domain.ProjectionInput
	Rows       []market.Row
	Selected   market.Detail
	AssetChart chart.Config
	Topics     []string
}

// Page renders the lab page with the mounted components only
func (s *Server) Page(w http.ResponseWriter, _ *http.Request) {
	logger := s.Logger.With(zap.String("method", "Page"))

	data := pageData{
		Simulation: s.Mounted.Enabled(app.ComponentSimulation),
		Markets:    s.Mounted.Enabled(app.ComponentMarkets),
		Chatbot:    s.Mounted.Enabled(app.ComponentChatbot),
		Defaults:   s.Config.Defaults,
	}
	if data.Markets {
		def := s.Catalog.Default()
		data.Rows = s.Catalog.Rows()
		data.Selected = market.NewDetail(def)
		data.AssetChart = chart.Asset(def)
	}
	if data.Chatbot {
		data.Topics = s.Responder.Topics()
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		logger.Error(err.Error())
		http.Error(w, "cannot render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
