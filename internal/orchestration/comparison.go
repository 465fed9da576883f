package orchestration

import (
	"context"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/beesim/internal/errors"
	"github.com/agbru/beesim/internal/model"
)

// Compare runs the model engine for the baseline and scenario lever
// configurations over the same horizon and starting population, and derives
// the aligned loss series and the terminal-year summary.
//
// Validation happens once, before either engine run, so partial results are
// never produced. The two runs are independent and execute concurrently; this
// is purely a performance measure, correctness does not depend on it.
//
// Parameters:
//   - ctx: The context for managing cancellation.
//   - baseline: The baseline trajectory levers (clamped before use).
//   - scenario: The scenario trajectory levers (clamped before use).
//   - years: The simulation horizon. Must be >= 1.
//   - startColonies: The shared initial colony count. Must be > 0.
//   - constants: The model constants, shared read-only by both runs.
//
// Returns:
//   - *SimulationResult: The comparison outcome, echoing the clamped levers.
//   - error: A HorizonError or StartPopulationError from validation, or the
//     context error if ctx was cancelled before the runs started.
func Compare(ctx context.Context, baseline, scenario model.LeverConfig, years int, startColonies float64, constants model.Constants) (*SimulationResult, error) {
	// Validate once, up front, for both runs.
	if years < 1 {
		return nil, apperrors.HorizonError{Years: years}
	}
	if startColonies <= 0 {
		return nil, apperrors.StartPopulationError{Colonies: startColonies}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	baseline = baseline.Clamped()
	scenario = scenario.Clamped()

	var baselineSeries, scenarioSeries []model.YearPoint

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		baselineSeries, err = model.Simulate(baseline, startColonies, years, constants)
		return err
	})
	g.Go(func() error {
		var err error
		scenarioSeries, err = model.Simulate(scenario, startColonies, years, constants)
		return err
	})
	if err := g.Wait(); err != nil {
		// Engine failures propagate unchanged; no recovery is attempted.
		return nil, err
	}

	loss := deriveLoss(baselineSeries, scenarioSeries)

	return &SimulationResult{
		Years:    years,
		Baseline: baseline,
		Scenario: scenario,
		Series: Series{
			Baseline: baselineSeries,
			Scenario: scenarioSeries,
			Loss:     loss,
		},
		Summary: buildSummary(baselineSeries, scenarioSeries, loss, constants),
	}, nil
}

// deriveLoss computes the signed per-year scenario-minus-baseline deltas and
// their running sums. Both series are generated over the same index set, so
// alignment is positional; no missing-year handling is needed.
func deriveLoss(baseline, scenario []model.YearPoint) []LossPoint {
	loss := make([]LossPoint, len(baseline))

	var cumEconomic, cumHoney float64
	for i := range baseline {
		economic := scenario[i].EconomicValueCHF - baseline[i].EconomicValueCHF
		honey := scenario[i].HoneyProductionTons - baseline[i].HoneyProductionTons

		cumEconomic += economic
		cumHoney += honey

		loss[i] = LossPoint{
			T:                         baseline[i].T,
			EconomicLossCHF:           economic,
			CumulativeEconomicLossCHF: cumEconomic,
			HoneyLossTons:             honey,
			CumulativeHoneyLossTons:   cumHoney,
		}
	}

	return loss
}

// buildSummary derives the terminal-year aggregates from the aligned series.
func buildSummary(baseline, scenario []model.YearPoint, loss []LossPoint, constants model.Constants) Summary {
	lastBaseline := baseline[len(baseline)-1]
	lastScenario := scenario[len(scenario)-1]
	lastLoss := loss[len(loss)-1]

	return Summary{
		BaselineColonies:        lastBaseline.Colonies,
		ScenarioColonies:        lastScenario.Colonies,
		ColoniesDelta:           lastScenario.Colonies - lastBaseline.Colonies,
		CumulativeLossCHF:       lastLoss.CumulativeEconomicLossCHF,
		CumulativeHoneyLossTons: lastLoss.CumulativeHoneyLossTons,
		BaselineHoneyYield:      lastBaseline.HoneyYieldPerColonyKg,
		ScenarioHoneyYield:      lastScenario.HoneyYieldPerColonyKg,
		BaselineDensityPerKm2:   lastBaseline.Colonies / constants.LandAreaKm2,
		ScenarioDensityPerKm2:   lastScenario.Colonies / constants.LandAreaKm2,
	}
}
