package model

// ─────────────────────────────────────────────────────────────────────────────
// Model Constants
// ─────────────────────────────────────────────────────────────────────────────
//
// The defaults below describe the Swiss managed honeybee stock and are derived
// from the 2022 Agroscope figures. They are fixed at model-definition time and
// shared read-only across concurrent simulation runs.

// Constants holds the immutable parameters of the colony dynamics model.
// A Constants value is safe to share between goroutines; nothing mutates it
// after construction.
type Constants struct {
	// InitialColonies is the default starting colony count.
	InitialColonies float64
	// CarryingCapacity is the logistic saturation ceiling K on the colony
	// population. Growth tapers to zero as the population approaches K.
	CarryingCapacity float64
	// BaseGrowthRate is the annual colony growth rate under neutral conditions.
	BaseGrowthRate float64
	// BaseLossRate is the annual colony loss rate under neutral conditions.
	BaseLossRate float64
	// ClimateGrowthFactor scales how strongly a favourable climate boosts the
	// effective growth rate.
	ClimateGrowthFactor float64
	// ClimateLossFactor scales how strongly an unfavourable climate inflates
	// the effective loss rate.
	ClimateLossFactor float64
	// DensityLossFactor scales the density-dependent loss surcharge as the
	// population approaches carrying capacity.
	DensityLossFactor float64
	// WinterMonthsMin and WinterMonthsMax bound the assumed winter duration in
	// months. Their midpoint drives the winter loss penalty.
	WinterMonthsMin float64
	WinterMonthsMax float64
	// HoneyYieldMinKg is the per-colony yield of a bad year (2021).
	HoneyYieldMinKg float64
	// HoneyYieldMaxKg is the per-colony yield of a very good year (2020).
	HoneyYieldMaxKg float64
	// EconomicValuePerColonyCHF is the annual economic value of one colony in
	// Swiss francs: roughly 600 CHF of hive products plus 985 CHF of
	// pollination services.
	EconomicValuePerColonyCHF float64
	// EconomicValueScaler discounts the theoretical per-colony value to the
	// realised one. Reported per year as the value multiplier.
	EconomicValueScaler float64
	// LandAreaKm2 is the land area used for colony density reporting.
	LandAreaKm2 float64
}

// ReferenceWinterMonths is the winter duration treated as penalty-free.
// Shorter assumed winters add a proportional surcharge to the loss rate.
const ReferenceWinterMonths = 6.0

// DefaultConstants returns the model constants for the Swiss bee system.
func DefaultConstants() Constants {
	return Constants{
		InitialColonies:           182_300, // colonies, Switzerland 2022
		CarryingCapacity:          350_000,
		BaseGrowthRate:            0.045, // per year, neutral conditions
		BaseLossRate:              0.040, // per year, neutral conditions
		ClimateGrowthFactor:       0.3,
		ClimateLossFactor:         0.5,
		DensityLossFactor:         0.3,
		WinterMonthsMin:           5,
		WinterMonthsMax:           6,
		HoneyYieldMinKg:           7.2,  // kg/colony, bad year
		HoneyYieldMaxKg:           29.9, // kg/colony, very good year
		EconomicValuePerColonyCHF: 1_585,
		EconomicValueScaler:       0.6,
		LandAreaKm2:               41_285,
	}
}

// WinterLossPenalty returns the additive loss-rate surcharge derived from the
// assumed winter duration: max(0, (6 - avg) / 6) where avg is the midpoint of
// the configured winter months range. The penalty depends only on constants,
// so callers compute it once per run rather than per year.
func (c Constants) WinterLossPenalty() float64 {
	avg := (c.WinterMonthsMin + c.WinterMonthsMax) / 2
	penalty := (ReferenceWinterMonths - avg) / ReferenceWinterMonths
	if penalty < 0 {
		return 0
	}
	return penalty
}
