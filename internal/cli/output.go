// Package cli renders comparison results for the terminal.
//
// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayExecutionConfig], [DisplaySummary], [DisplayQuietResult].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/agbru/beesim/internal/format"
	"github.com/agbru/beesim/internal/metrics"
	"github.com/agbru/beesim/internal/model"
	"github.com/agbru/beesim/internal/orchestration"
	"github.com/agbru/beesim/internal/ui"
)

// TrajectoryTailYears is how many trailing years the result table shows.
const TrajectoryTailYears = 5

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// JSON emits the full comparison result as JSON and nothing else.
	JSON bool
	// Quiet suppresses everything except the single-line summary.
	Quiet bool
	// Verbose prints the full year-by-year trajectory table.
	Verbose bool
}

// DisplayExecutionConfig prints the run parameters before the simulation.
func DisplayExecutionConfig(out io.Writer, baseline, scenario model.LeverConfig, years int, startColonies float64) {
	fmt.Fprintf(out, "%sBee colony comparison%s over %s%d%s years, starting from %s colonies\n",
		ui.ColorBold(), ui.ColorReset(),
		ui.ColorYellow(), years, ui.ColorReset(),
		format.FormatColonies(startColonies))
	fmt.Fprintf(out, "  baseline: stress=%.2f mgmt=%.2f climate=%.2f\n",
		baseline.EnvironmentStress, baseline.DiseaseManagement, baseline.ClimateFactor)
	fmt.Fprintf(out, "  scenario: stress=%.2f mgmt=%.2f climate=%.2f\n",
		scenario.EnvironmentStress, scenario.DiseaseManagement, scenario.ClimateFactor)
}

// DisplayResult renders a full comparison result according to config.
func DisplayResult(out io.Writer, result *orchestration.SimulationResult, elapsed time.Duration, config OutputConfig) error {
	if config.JSON {
		return WriteJSON(out, result)
	}
	if config.Quiet {
		DisplayQuietResult(out, result)
		return nil
	}

	DisplayTrajectories(out, result, config.Verbose)
	DisplaySummary(out, result, elapsed)
	return nil
}

// WriteJSON writes the comparison result as indented JSON.
func WriteJSON(out io.Writer, result *orchestration.SimulationResult) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// DisplayQuietResult prints a single machine-friendly summary line.
func DisplayQuietResult(out io.Writer, result *orchestration.SimulationResult) {
	s := result.Summary
	fmt.Fprintf(out, "years=%d baseline=%.0f scenario=%.0f delta=%.0f cumulative_loss_chf=%.0f\n",
		result.Years, s.BaselineColonies, s.ScenarioColonies, s.ColoniesDelta, s.CumulativeLossCHF)
}

// DisplayTrajectories prints the year-by-year table. In verbose mode every
// year is shown; otherwise only the last TrajectoryTailYears rows.
func DisplayTrajectories(out io.Writer, result *orchestration.SimulationResult, verbose bool) {
	fmt.Fprintf(out, "\n%sYear   Baseline     Scenario     Delta CHF%s\n",
		ui.ColorUnderline(), ui.ColorReset())

	start := 0
	if !verbose && len(result.Series.Loss) > TrajectoryTailYears {
		start = len(result.Series.Loss) - TrajectoryTailYears
		fmt.Fprintf(out, "%s...%s\n", ui.ColorSecondary(), ui.ColorReset())
	}

	for i := start; i < len(result.Series.Loss); i++ {
		b := result.Series.Baseline[i]
		s := result.Series.Scenario[i]
		l := result.Series.Loss[i]
		fmt.Fprintf(out, "%s%4d%s   %10s   %10s   %s%s%s\n",
			ui.ColorBlue(), b.T, ui.ColorReset(),
			format.FormatColonies(b.Colonies),
			format.FormatColonies(s.Colonies),
			deltaColor(l.EconomicLossCHF), format.FormatSigned(l.EconomicLossCHF), ui.ColorReset())
	}
}

// DisplaySummary prints the headline indicators and the elapsed time.
func DisplaySummary(out io.Writer, result *orchestration.SimulationResult, elapsed time.Duration) {
	s := result.Summary
	ind := metrics.Compute(result)

	fmt.Fprintf(out, "\n%s--- Summary after %d years ---%s\n", ui.ColorBold(), result.Years, ui.ColorReset())
	fmt.Fprintf(out, "Baseline colonies:   %s (%.2f/km²)\n",
		format.FormatColonies(s.BaselineColonies), s.BaselineDensityPerKm2)
	fmt.Fprintf(out, "Scenario colonies:   %s (%.2f/km²)\n",
		format.FormatColonies(s.ScenarioColonies), s.ScenarioDensityPerKm2)
	fmt.Fprintf(out, "Colonies delta:      %s%s (%.1f%%)%s\n",
		deltaColor(s.ColoniesDelta), format.FormatSigned(s.ColoniesDelta), ind.ColoniesDeltaPct, ui.ColorReset())
	fmt.Fprintf(out, "Honey yield:         %s baseline vs %s scenario\n",
		format.FormatKg(s.BaselineHoneyYield), format.FormatKg(s.ScenarioHoneyYield))
	fmt.Fprintf(out, "Cumulative delta:    %s%s%s (%s honey)\n",
		deltaColor(s.CumulativeLossCHF), format.FormatCHF(s.CumulativeLossCHF), ui.ColorReset(),
		format.FormatTons(s.CumulativeHoneyLossTons))
	if ind.PeakAnnualLossCHF > 0 {
		fmt.Fprintf(out, "Worst year:          %d (%s shortfall)\n",
			ind.PeakLossYear, format.FormatCHF(ind.PeakAnnualLossCHF))
	}
	if ind.ScenarioCollapsed {
		fmt.Fprintf(out, "%sScenario trajectory collapsed to zero colonies%s\n",
			ui.ColorRed(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Elapsed:             %s\n", format.FormatExecutionDuration(elapsed))
}

// deltaColor picks green for favourable deltas and red for shortfalls.
func deltaColor(delta float64) string {
	if delta < 0 {
		return ui.ColorRed()
	}
	return ui.ColorGreen()
}
