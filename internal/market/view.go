package market

import (
	"github.com/finlab/finance-lab/internal/domain"
	fmtdec "github.com/finlab/finance-lab/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Row is one rendered line of the asset table
type Row struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Price       string `json:"price"`
	Change      string `json:"change"`
	ChangeClass string `json:"change_class"`
}

// Detail is the selected-asset panel
type Detail struct {
	Row
	Series []float64 `json:"series"`
	Labels []string  `json:"labels"`
}

// ChangeClass returns the css class of a percent change
func ChangeClass(a domain.Asset) string {
	if a.IsUp() {
		return "change-pos"
	}
	return "change-neg"
}

// NewRow formats an asset for the table
func NewRow(a domain.Asset) Row {
	return Row{
		ID:          a.ID,
		Name:        a.Name,
		Type:        a.Type,
		Price:       fmtdec.FormatNumber(decimal.NewFromFloat(a.Price)) + " €",
		Change:      fmtdec.FormatSignedPercent(decimal.NewFromFloat(a.Change)),
		ChangeClass: ChangeClass(a),
	}
}

// NewDetail formats an asset for the detail panel
func NewDetail(a domain.Asset) Detail {
	return Detail{
		Row:    NewRow(a),
		Series: append([]float64(nil), a.Series...),
		Labels: append([]string(nil), HistoryLabels...),
	}
}

// Rows formats the whole catalog
func (c *Catalog) Rows() []Row {
	rows := make([]Row, 0, len(c.assets))
	for _, a := range c.assets {
		rows = append(rows, NewRow(a))
	}
	return rows
}
