package orchestration

import (
	"github.com/agbru/beesim/internal/model"
)

// LossPoint is one simulated year of the scenario-versus-baseline comparison.
//
// All deltas are the signed algebraic scenario-minus-baseline difference.
// The orchestrator deliberately does not assume which trajectory is the worse
// one; interpreting the sign ("loss" versus "gain") is the consumer's concern.
type LossPoint struct {
	// T is the year index, aligned with both trajectories.
	T int `json:"t"`
	// EconomicLossCHF is scenario minus baseline economic value at year T.
	EconomicLossCHF float64 `json:"economic_loss_chf"`
	// CumulativeEconomicLossCHF is the running sum of EconomicLossCHF over 0..T.
	CumulativeEconomicLossCHF float64 `json:"cumulative_economic_loss_chf"`
	// HoneyLossTons is scenario minus baseline honey production at year T.
	HoneyLossTons float64 `json:"honey_loss_tons"`
	// CumulativeHoneyLossTons is the running sum of HoneyLossTons over 0..T.
	CumulativeHoneyLossTons float64 `json:"cumulative_honey_loss_tons"`
}

// Series bundles the three aligned per-year series of one comparison.
type Series struct {
	Baseline []model.YearPoint `json:"baseline"`
	Scenario []model.YearPoint `json:"scenario"`
	Loss     []LossPoint       `json:"loss"`
}

// Summary holds the terminal-year aggregates of one comparison.
type Summary struct {
	BaselineColonies        float64 `json:"baseline_colonies"`
	ScenarioColonies        float64 `json:"scenario_colonies"`
	ColoniesDelta           float64 `json:"colonies_delta"`
	CumulativeLossCHF       float64 `json:"cumulative_loss_chf"`
	CumulativeHoneyLossTons float64 `json:"cumulative_honey_loss_tons"`
	BaselineHoneyYield      float64 `json:"baseline_honey_yield"`
	ScenarioHoneyYield      float64 `json:"scenario_honey_yield"`
	// Colony densities per km² of land area, for density reporting.
	BaselineDensityPerKm2 float64 `json:"baseline_density_per_km2"`
	ScenarioDensityPerKm2 float64 `json:"scenario_density_per_km2"`
}

// SimulationResult is the full outcome of one comparison. It echoes the
// horizon and the (possibly clamped) lever configurations actually used, so
// that callers can detect server-side clamping. A result is constructed fresh
// per invocation and never mutated afterwards.
type SimulationResult struct {
	Years    int               `json:"years"`
	Baseline model.LeverConfig `json:"baseline"`
	Scenario model.LeverConfig `json:"scenario"`
	Series   Series            `json:"series"`
	Summary  Summary           `json:"summary"`
}
