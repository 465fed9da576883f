// Package metrics derives headline indicators from a comparison result for
// display in the CLI summary and the dashboard.
package metrics

import "github.com/agbru/beesim/internal/orchestration"

// Indicators holds the derived headline figures of one comparison.
type Indicators struct {
	// Terminal colony populations of both trajectories.
	BaselineColonies float64
	ScenarioColonies float64
	// ColoniesDeltaPct is the terminal population delta as a percentage of
	// the baseline. Zero when the baseline collapsed to zero.
	ColoniesDeltaPct float64
	// AvgAnnualLossCHF is the cumulative economic delta averaged over the
	// simulated years (year 0 excluded, it carries no net change).
	AvgAnnualLossCHF float64
	// PeakAnnualLossCHF is the largest single-year economic shortfall.
	// Positive magnitude; zero when the scenario never trails the baseline.
	PeakAnnualLossCHF float64
	// PeakLossYear is the year index of PeakAnnualLossCHF, 0 if none.
	PeakLossYear int
	// ScenarioCollapsed reports whether the scenario trajectory reached a
	// population of zero at any point.
	ScenarioCollapsed bool
}

// Compute derives the indicators from a comparison result.
func Compute(result *orchestration.SimulationResult) Indicators {
	ind := Indicators{
		BaselineColonies: result.Summary.BaselineColonies,
		ScenarioColonies: result.Summary.ScenarioColonies,
	}

	if result.Summary.BaselineColonies > 0 {
		ind.ColoniesDeltaPct = 100 * result.Summary.ColoniesDelta / result.Summary.BaselineColonies
	}

	if result.Years > 0 {
		ind.AvgAnnualLossCHF = result.Summary.CumulativeLossCHF / float64(result.Years)
	}

	for _, lp := range result.Series.Loss {
		if shortfall := -lp.EconomicLossCHF; shortfall > ind.PeakAnnualLossCHF {
			ind.PeakAnnualLossCHF = shortfall
			ind.PeakLossYear = lp.T
		}
	}

	for _, yp := range result.Series.Scenario {
		if yp.Colonies == 0 {
			ind.ScenarioCollapsed = true
			break
		}
	}

	return ind
}
