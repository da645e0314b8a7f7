package domain

// Asset is one row of the mock market dashboard
type Asset struct {
	ID     string    `yaml:"id" json:"id"`
	Name   string    `yaml:"name" json:"name"`
	Type   string    `yaml:"type" json:"type"`
	Price  float64   `yaml:"price" json:"price"`
	Change float64   `yaml:"change" json:"change"` // percent change
	Series []float64 `yaml:"series" json:"series"`
}

// IsUp reports whether the asset change is displayed as a gain
func (a Asset) IsUp() bool {
	return a.Change >= 0
}
