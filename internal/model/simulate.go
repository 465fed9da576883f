// Package model implements the colony dynamics engine: a deterministic
// discrete-time recurrence producing one yearly trajectory of colony counts,
// honey output, and economic value for a given lever configuration.
//
// The engine is pure: no I/O, no shared mutable state, no randomness.
// Identical inputs produce bit-identical output.
package model

import (
	apperrors "github.com/agbru/beesim/internal/errors"
)

// YearPoint is one simulated year of a single trajectory. Values are immutable
// once produced; a trajectory is an ordered slice indexed by T = 0..years.
type YearPoint struct {
	// T is the year index, 0 being the initial condition.
	T int `json:"t"`
	// Colonies is the colony population at year T.
	Colonies float64 `json:"bee_colonies"`
	// HoneyYieldPerColonyKg is the per-colony honey yield in kg.
	HoneyYieldPerColonyKg float64 `json:"honey_yield_per_colony"`
	// HoneyProductionTons is the total honey production in metric tons.
	HoneyProductionTons float64 `json:"honey_production_tons"`
	// EconomicValueCHF is the realised economic value in Swiss francs.
	EconomicValueCHF float64 `json:"economic_value_chf"`
	// ValueMultiplier is the ratio of realised to theoretical per-colony value.
	ValueMultiplier float64 `json:"value_multiplier"`
}

// Simulate runs the yearly recurrence for one lever configuration and returns
// the trajectory as years+1 points (T = 0..years). Year 0 is the initial
// condition: the same yield and value formulas applied to startColonies with
// zero net population change.
//
// Levers are clamped into [0, 1] before use. The population is floored at
// zero mid-run; a collapse to zero is a valid model state, not an error.
//
// Parameters:
//   - levers: The control levers, constant across the horizon.
//   - startColonies: The initial colony count. Must be > 0.
//   - years: The simulation horizon. Must be >= 1.
//   - c: The model constants.
//
// Returns:
//   - []YearPoint: The trajectory, or nil on error.
//   - error: HorizonError if years < 1, StartPopulationError if
//     startColonies <= 0.
func Simulate(levers LeverConfig, startColonies float64, years int, c Constants) ([]YearPoint, error) {
	if years < 1 {
		return nil, apperrors.HorizonError{Years: years}
	}
	if startColonies <= 0 {
		return nil, apperrors.StartPopulationError{Colonies: startColonies}
	}

	lv := levers.Clamped()
	winterPenalty := c.WinterLossPenalty()

	points := make([]YearPoint, 0, years+1)
	points = append(points, newYearPoint(0, startColonies, lv, c))

	colonies := startColonies
	for t := 1; t <= years; t++ {
		eg := EffectiveGrowthRate(lv, c)
		el := EffectiveLossRate(lv, colonies, winterPenalty, c)

		growth := colonies * eg * (1 - colonies/c.CarryingCapacity)
		loss := colonies * el

		colonies += growth - loss
		if colonies < 0 {
			// Colony collapse: clamp and keep simulating.
			colonies = 0
		}

		points = append(points, newYearPoint(t, colonies, lv, c))
	}

	return points, nil
}

// EffectiveGrowthRate composes the base growth rate with the stress,
// management, and climate modifiers:
//
//	eg = base * (1 + 0.5*(1-stress) + 0.5*management) * (0.7 + cgf*climate)
//
// It is non-increasing in stress and non-decreasing in management and climate.
func EffectiveGrowthRate(lv LeverConfig, c Constants) float64 {
	return c.BaseGrowthRate *
		(1 + 0.5*(1-lv.EnvironmentStress) + 0.5*lv.DiseaseManagement) *
		(0.7 + c.ClimateGrowthFactor*lv.ClimateFactor)
}

// EffectiveLossRate composes the base loss rate with the stress, management,
// winter, climate, and density modifiers:
//
//	el = base * (1 + stress + 0.5*(1-management) + winterPenalty)
//	          * (1 + clf*(1-climate))
//	          * (1 + dlf*C/K)
//
// It is non-decreasing in stress and in the current population C.
func EffectiveLossRate(lv LeverConfig, colonies, winterPenalty float64, c Constants) float64 {
	return c.BaseLossRate *
		(1 + lv.EnvironmentStress + 0.5*(1-lv.DiseaseManagement) + winterPenalty) *
		(1 + c.ClimateLossFactor*(1-lv.ClimateFactor)) *
		(1 + c.DensityLossFactor*colonies/c.CarryingCapacity)
}

// HoneyYieldPerColony returns the stress-damped per-colony honey yield in kg.
// Levers are constant within one run, so the result is constant per run, but
// it is recomputed each year so that a future per-year lever schedule can
// slot in without touching the recurrence.
func HoneyYieldPerColony(lv LeverConfig, c Constants) float64 {
	return c.HoneyYieldMinKg +
		(c.HoneyYieldMaxKg-c.HoneyYieldMinKg)*(1-0.5*lv.EnvironmentStress)
}

// newYearPoint evaluates the yield and value converters for one year.
func newYearPoint(t int, colonies float64, lv LeverConfig, c Constants) YearPoint {
	yield := HoneyYieldPerColony(lv, c)
	return YearPoint{
		T:                     t,
		Colonies:              colonies,
		HoneyYieldPerColonyKg: yield,
		HoneyProductionTons:   colonies * yield / 1000,
		EconomicValueCHF:      colonies * c.EconomicValuePerColonyCHF * c.EconomicValueScaler,
		ValueMultiplier:       c.EconomicValueScaler,
	}
}
