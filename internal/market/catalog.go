// Package market holds the mock market dashboard: a fixed list of assets with a
// six point history each. The data is static and never fetched.
package market

import (
	"errors"
	"fmt"

	"github.com/finlab/finance-lab/internal/domain"
)

// ErrUnknownAsset is returned when an asset id is not part of the catalog
var ErrUnknownAsset = errors.New("unknown asset")

// HistoryLabels is the relative time axis shared by every asset series
var HistoryLabels = []string{"T-5", "T-4", "T-3", "T-2", "T-1", "Maintenant"}

var assets = []domain.Asset{
	{
		ID:     "CAC40",
		Name:   "CAC 40",
		Type:   "Actions / ETF",
		Price:  7420,
		Change: 0.32,
		Series: []float64{6800, 6950, 7050, 7200, 7350, 7420},
	},
	{
		ID:     "SP500",
		Name:   "S&P 500",
		Type:   "Actions / ETF",
		Price:  5098,
		Change: -0.27,
		Series: []float64{5000, 5040, 5065, 5100, 5120, 5098},
	},
	{
		ID:     "NASDAQ",
		Name:   "NASDAQ 100",
		Type:   "Actions / Tech",
		Price:  18045,
		Change: 0.61,
		Series: []float64{17000, 17300, 17650, 17900, 18100, 18045},
	},
	{
		ID:     "MSCIW",
		Name:   "MSCI World",
		Type:   "ETF Monde",
		Price:  3220,
		Change: 0.18,
		Series: []float64{3000, 3060, 3100, 3160, 3205, 3220},
	},
	{
		ID:     "BTC",
		Name:   "Bitcoin",
		Type:   "Crypto labo",
		Price:  68440,
		Change: 1.25,
		Series: []float64{62000, 63500, 65000, 67000, 68000, 68440},
	},
	{
		ID:     "ETH",
		Name:   "Ethereum",
		Type:   "Crypto labo",
		Price:  3905,
		Change: -0.8,
		Series: []float64{3800, 3880, 3920, 3970, 3950, 3905},
	},
}

// Catalog is a read-only view over the static asset list
type Catalog struct {
	assets []domain.Asset
}

// NewCatalog returns the built-in catalog
func NewCatalog() *Catalog {
	return &Catalog{assets: assets}
}

// Assets returns a copy of every asset in table order
func (c *Catalog) Assets() []domain.Asset {
	out := make([]domain.Asset, len(c.assets))
	for i, a := range c.assets {
		a.Series = append([]float64(nil), a.Series...)
		out[i] = a
	}
	return out
}

// Default returns the asset shown before any row is selected (the first one)
func (c *Catalog) Default() domain.Asset {
	a, _ := c.Find(c.assets[0].ID)
	return a
}

// Find looks up an asset by id
func (c *Catalog) Find(id string) (domain.Asset, error) {
	for _, a := range c.assets {
		if a.ID == id {
			a.Series = append([]float64(nil), a.Series...)
			return a, nil
		}
	}
	return domain.Asset{}, fmt.Errorf("%w: %q", ErrUnknownAsset, id)
}
