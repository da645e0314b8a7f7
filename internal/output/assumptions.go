package output

import (
	"fmt"

	"github.com/finlab/finance-lab/internal/calculation"
	"github.com/finlab/finance-lab/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultAssumptions lists the modelling assumptions that hold for every simulation.
var DefaultAssumptions = []string{
	"Capitalisation mensuelle : taux annuel / 12, appliqué chaque mois",
	"Versement ajouté en fin de mois, après les intérêts",
	"Aucun frais, aucune fiscalité, aucune inflation",
	"Simulation pédagogique : les marchés réels ne suivent pas un taux fixe",
}

// GenerateAssumptions creates the assumption list from the simulation input
func GenerateAssumptions(input domain.ProjectionInput) []string {
	median := decimal.NewFromFloat(input.AnnualRatePercent)
	spread := decimal.NewFromFloat(calculation.ScenarioSpreadPoints)
	return append([]string{
		fmt.Sprintf("Taux médian : %s par an (pessimiste %s, optimiste %s)",
			FormatPercentage(median), FormatPercentage(median.Sub(spread)), FormatPercentage(median.Add(spread))),
		fmt.Sprintf("Horizon : %d ans, soit %d mois", input.Years, input.Months()),
	}, DefaultAssumptions...)
}

var decimalHundred = decimal.NewFromInt(100)
