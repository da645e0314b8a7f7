package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Assets(t *testing.T) {
	c := NewCatalog()
	all := c.Assets()
	require.Len(t, all, 6)

	ids := make([]string, 0, len(all))
	for _, a := range all {
		ids = append(ids, a.ID)
		assert.Len(t, a.Series, 6, a.ID)
		assert.Equal(t, a.Price, a.Series[5], "%s: last point is the current price", a.ID)
	}
	assert.Equal(t, []string{"CAC40", "SP500", "NASDAQ", "MSCIW", "BTC", "ETH"}, ids)
}

func TestCatalog_AssetsAreCopies(t *testing.T) {
	c := NewCatalog()
	all := c.Assets()
	all[0].Series[0] = -1
	all[0].Name = "changed"

	again := c.Assets()
	assert.Equal(t, 6800.0, again[0].Series[0])
	assert.Equal(t, "CAC 40", again[0].Name)
}

func TestCatalog_Find(t *testing.T) {
	c := NewCatalog()

	btc, err := c.Find("BTC")
	require.NoError(t, err)
	assert.Equal(t, "Bitcoin", btc.Name)
	assert.Equal(t, "Crypto labo", btc.Type)
	assert.Equal(t, 68440.0, btc.Price)
	assert.Equal(t, 1.25, btc.Change)
	assert.Equal(t, []float64{62000, 63500, 65000, 67000, 68000, 68440}, btc.Series)

	_, err = c.Find("DOGE")
	assert.ErrorIs(t, err, ErrUnknownAsset)
	assert.Contains(t, err.Error(), "DOGE")
}

func TestCatalog_Default(t *testing.T) {
	assert.Equal(t, "CAC40", NewCatalog().Default().ID)
}

func TestRows(t *testing.T) {
	rows := NewCatalog().Rows()
	require.Len(t, rows, 6)

	assert.Equal(t, Row{
		ID:          "CAC40",
		Name:        "CAC 40",
		Type:        "Actions / ETF",
		Price:       "7\u202f420 €",
		Change:      "+0.32 %",
		ChangeClass: "change-pos",
	}, rows[0])

	assert.Equal(t, "-0.27 %", rows[1].Change)
	assert.Equal(t, "change-neg", rows[1].ChangeClass)
	assert.Equal(t, "-0.80 %", rows[5].Change)
	assert.Equal(t, "68\u202f440 €", rows[4].Price)
}

func TestNewDetail(t *testing.T) {
	eth, err := NewCatalog().Find("ETH")
	require.NoError(t, err)

	d := NewDetail(eth)
	assert.Equal(t, "Ethereum", d.Name)
	assert.Equal(t, "change-neg", d.ChangeClass)
	assert.Equal(t, HistoryLabels, d.Labels)
	assert.Equal(t, eth.Series, d.Series)
}
