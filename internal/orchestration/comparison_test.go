package orchestration

import (
	"context"
	"errors"
	"math"
	"testing"

	apperrors "github.com/agbru/beesim/internal/errors"
	"github.com/agbru/beesim/internal/model"
)

func mustCompare(t *testing.T, baseline, scenario model.LeverConfig, years int) *SimulationResult {
	t.Helper()
	c := model.DefaultConstants()
	res, err := Compare(context.Background(), baseline, scenario, years, c.InitialColonies, c)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	return res
}

func TestCompare_AlignedSeriesLengths(t *testing.T) {
	t.Parallel()

	res := mustCompare(t, model.BaselinePreset(), model.ScenarioPreset(), 20)

	if len(res.Series.Baseline) != 21 || len(res.Series.Scenario) != 21 || len(res.Series.Loss) != 21 {
		t.Fatalf("series lengths = %d/%d/%d, want 21 each",
			len(res.Series.Baseline), len(res.Series.Scenario), len(res.Series.Loss))
	}
	for i := range res.Series.Loss {
		if res.Series.Loss[i].T != i {
			t.Fatalf("loss[%d].T = %d, want %d", i, res.Series.Loss[i].T, i)
		}
	}
}

func TestCompare_YearZeroIdentity(t *testing.T) {
	t.Parallel()

	c := model.DefaultConstants()
	res := mustCompare(t, model.BaselinePreset(), model.ScenarioPreset(), 10)

	if res.Series.Baseline[0].Colonies != c.InitialColonies {
		t.Errorf("baseline[0].Colonies = %g, want %g", res.Series.Baseline[0].Colonies, c.InitialColonies)
	}
	if res.Series.Scenario[0].Colonies != c.InitialColonies {
		t.Errorf("scenario[0].Colonies = %g, want %g", res.Series.Scenario[0].Colonies, c.InitialColonies)
	}
}

func TestCompare_IdenticalLeversYieldZeroLoss(t *testing.T) {
	t.Parallel()

	levers := model.BaselinePreset()
	res := mustCompare(t, levers, levers, 25)

	for _, lp := range res.Series.Loss {
		if lp.EconomicLossCHF != 0 || lp.CumulativeEconomicLossCHF != 0 ||
			lp.HoneyLossTons != 0 || lp.CumulativeHoneyLossTons != 0 {
			t.Fatalf("loss[%d] = %+v, want all-zero for identical levers", lp.T, lp)
		}
	}
	if res.Summary.ColoniesDelta != 0 {
		t.Errorf("ColoniesDelta = %g, want 0", res.Summary.ColoniesDelta)
	}
	if res.Summary.CumulativeLossCHF != 0 {
		t.Errorf("CumulativeLossCHF = %g, want 0", res.Summary.CumulativeLossCHF)
	}
}

func TestCompare_CumulativeConsistency(t *testing.T) {
	t.Parallel()

	res := mustCompare(t, model.BaselinePreset(), model.ScenarioPreset(), 40)

	var sumEconomic, sumHoney float64
	for i, lp := range res.Series.Loss {
		sumEconomic += lp.EconomicLossCHF
		sumHoney += lp.HoneyLossTons

		// Running sums are built the same way, so equality is exact.
		if lp.CumulativeEconomicLossCHF != sumEconomic {
			t.Fatalf("cumulative economic loss at t=%d: got %g, want %g",
				i, lp.CumulativeEconomicLossCHF, sumEconomic)
		}
		if lp.CumulativeHoneyLossTons != sumHoney {
			t.Fatalf("cumulative honey loss at t=%d: got %g, want %g",
				i, lp.CumulativeHoneyLossTons, sumHoney)
		}
	}
}

func TestCompare_SignedDeltaConvention(t *testing.T) {
	t.Parallel()

	// The default scenario preset is worse than the baseline, so the signed
	// scenario-minus-baseline economic delta must be negative past year 0.
	res := mustCompare(t, model.BaselinePreset(), model.ScenarioPreset(), 20)
	last := res.Series.Loss[len(res.Series.Loss)-1]
	if last.EconomicLossCHF >= 0 {
		t.Errorf("worse scenario: terminal economic delta = %g, want < 0", last.EconomicLossCHF)
	}

	// With the trajectories swapped the deltas mirror exactly: the
	// orchestrator reports the algebraic delta without assuming a sign.
	swapped := mustCompare(t, model.ScenarioPreset(), model.BaselinePreset(), 20)
	for i := range res.Series.Loss {
		if res.Series.Loss[i].EconomicLossCHF != -swapped.Series.Loss[i].EconomicLossCHF {
			t.Fatalf("delta at t=%d is not antisymmetric under trajectory swap", i)
		}
	}
}

func TestCompare_SummaryDerivedFromTerminalYear(t *testing.T) {
	t.Parallel()

	c := model.DefaultConstants()
	res := mustCompare(t, model.BaselinePreset(), model.ScenarioPreset(), 15)

	lastBaseline := res.Series.Baseline[15]
	lastScenario := res.Series.Scenario[15]
	lastLoss := res.Series.Loss[15]

	if res.Summary.BaselineColonies != lastBaseline.Colonies {
		t.Errorf("BaselineColonies = %g, want %g", res.Summary.BaselineColonies, lastBaseline.Colonies)
	}
	if res.Summary.ScenarioColonies != lastScenario.Colonies {
		t.Errorf("ScenarioColonies = %g, want %g", res.Summary.ScenarioColonies, lastScenario.Colonies)
	}
	if res.Summary.ColoniesDelta != lastScenario.Colonies-lastBaseline.Colonies {
		t.Errorf("ColoniesDelta = %g", res.Summary.ColoniesDelta)
	}
	if res.Summary.CumulativeLossCHF != lastLoss.CumulativeEconomicLossCHF {
		t.Errorf("CumulativeLossCHF = %g, want %g", res.Summary.CumulativeLossCHF, lastLoss.CumulativeEconomicLossCHF)
	}
	if res.Summary.CumulativeHoneyLossTons != lastLoss.CumulativeHoneyLossTons {
		t.Errorf("CumulativeHoneyLossTons = %g", res.Summary.CumulativeHoneyLossTons)
	}
	if res.Summary.BaselineHoneyYield != lastBaseline.HoneyYieldPerColonyKg {
		t.Errorf("BaselineHoneyYield = %g", res.Summary.BaselineHoneyYield)
	}
	if res.Summary.ScenarioHoneyYield != lastScenario.HoneyYieldPerColonyKg {
		t.Errorf("ScenarioHoneyYield = %g", res.Summary.ScenarioHoneyYield)
	}

	wantDensity := lastBaseline.Colonies / c.LandAreaKm2
	if math.Abs(res.Summary.BaselineDensityPerKm2-wantDensity) > 1e-12 {
		t.Errorf("BaselineDensityPerKm2 = %g, want %g", res.Summary.BaselineDensityPerKm2, wantDensity)
	}
}

func TestCompare_EchoesClampedLevers(t *testing.T) {
	t.Parallel()

	raw := model.LeverConfig{EnvironmentStress: -0.5, DiseaseManagement: 1.7, ClimateFactor: 0.4}
	res := mustCompare(t, raw, model.ScenarioPreset(), 5)

	want := model.LeverConfig{EnvironmentStress: 0, DiseaseManagement: 1, ClimateFactor: 0.4}
	if res.Baseline != want {
		t.Errorf("echoed baseline levers = %+v, want clamped %+v", res.Baseline, want)
	}
	if res.Years != 5 {
		t.Errorf("echoed years = %d, want 5", res.Years)
	}

	// The clamped echo corresponds to the trajectory actually simulated.
	direct := mustCompare(t, want, model.ScenarioPreset(), 5)
	for i := range res.Series.Baseline {
		if res.Series.Baseline[i] != direct.Series.Baseline[i] {
			t.Fatalf("clamped run differs from direct run at t=%d", i)
		}
	}
}

func TestCompare_ValidationBeforeEitherRun(t *testing.T) {
	t.Parallel()

	c := model.DefaultConstants()

	_, err := Compare(context.Background(), model.BaselinePreset(), model.ScenarioPreset(), 0, c.InitialColonies, c)
	var horizonErr apperrors.HorizonError
	if !errors.As(err, &horizonErr) {
		t.Fatalf("Compare(years=0) error = %v, want HorizonError", err)
	}

	_, err = Compare(context.Background(), model.BaselinePreset(), model.ScenarioPreset(), 10, 0, c)
	var startErr apperrors.StartPopulationError
	if !errors.As(err, &startErr) {
		t.Fatalf("Compare(start=0) error = %v, want StartPopulationError", err)
	}
}

func TestCompare_CancelledContext(t *testing.T) {
	t.Parallel()

	c := model.DefaultConstants()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Compare(ctx, model.BaselinePreset(), model.ScenarioPreset(), 10, c.InitialColonies, c)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Compare with cancelled context: error = %v, want context.Canceled", err)
	}
}

func TestCompare_DeterministicAcrossConcurrentRuns(t *testing.T) {
	t.Parallel()

	// Concurrent execution of the two engine runs must not introduce any
	// nondeterminism: repeated comparisons are bit-identical.
	first := mustCompare(t, model.BaselinePreset(), model.ScenarioPreset(), 100)
	second := mustCompare(t, model.BaselinePreset(), model.ScenarioPreset(), 100)

	for i := range first.Series.Loss {
		if first.Series.Loss[i] != second.Series.Loss[i] {
			t.Fatalf("loss series differs at t=%d across identical runs", i)
		}
	}
	if first.Summary != second.Summary {
		t.Fatalf("summaries differ across identical runs: %+v vs %+v", first.Summary, second.Summary)
	}
}
