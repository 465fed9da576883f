package model

// LeverConfig holds the three normalized control levers of a trajectory.
// Each lever lives in [0, 1]; out-of-range input is silently clamped at the
// point of acceptance rather than rejected.
type LeverConfig struct {
	// EnvironmentStress: 0 = no stress, 1 = maximal pesticide/habitat pressure.
	EnvironmentStress float64 `json:"environment_stress"`
	// DiseaseManagement: 0 = no intervention, 1 = fully effective pathogen control.
	DiseaseManagement float64 `json:"disease_management"`
	// ClimateFactor: 0 = worst climate (drought, poor forage), 1 = optimal climate.
	ClimateFactor float64 `json:"climate_factor"`
}

// Clamped returns a copy of the lever configuration with all three values
// clamped into [0, 1].
func (l LeverConfig) Clamped() LeverConfig {
	return LeverConfig{
		EnvironmentStress: clamp01(l.EnvironmentStress),
		DiseaseManagement: clamp01(l.DiseaseManagement),
		ClimateFactor:     clamp01(l.ClimateFactor),
	}
}

// clamp01 clamps v into the unit interval.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// BaselinePreset returns the default baseline trajectory levers: moderate
// stress, decent disease management, an average climate year.
func BaselinePreset() LeverConfig {
	return LeverConfig{
		EnvironmentStress: 0.3,
		DiseaseManagement: 0.7,
		ClimateFactor:     0.6,
	}
}

// ScenarioPreset returns the default scenario trajectory levers: a stressed
// system with weak disease management and a below-average climate year.
func ScenarioPreset() LeverConfig {
	return LeverConfig{
		EnvironmentStress: 0.8,
		DiseaseManagement: 0.3,
		ClimateFactor:     0.4,
	}
}
