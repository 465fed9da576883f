package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/beesim/internal/format"
	"github.com/agbru/beesim/internal/model"
	"github.com/agbru/beesim/internal/orchestration"
)

// leftPanelWidth is the inner width of the lever and summary panels.
const leftPanelWidth = 44

var leverNames = [leverCount]string{
	"Environment stress",
	"Disease management",
	"Climate favourability",
}

// renderHeader renders the top bar: title, version, horizon, elapsed time.
func (m Model) renderHeader() string {
	titleText := "BeeSim Dashboard"
	if m.version != "" && m.version != "dev" {
		titleText += " " + m.version
	}
	title := titleStyle.Render(titleText)
	pipe := versionStyle.Render(" | ")

	horizon := elapsedStyle.Render(fmt.Sprintf("Horizon: %d years", m.years))
	elapsed := versionStyle.Render(
		fmt.Sprintf("up %s", format.FormatExecutionDuration(time.Since(m.startTime).Truncate(time.Second))))

	row := title + pipe + horizon + pipe + elapsed
	return headerStyle.Width(m.width).Render(row)
}

// renderLevers renders the editable lever rows for both trajectories.
func (m Model) renderLevers() string {
	var b strings.Builder

	side := baselineStyle.Render("baseline")
	if m.editScenario {
		side = scenarioStyle.Render("scenario")
	}
	b.WriteString(metricLabelStyle.Render("Levers") + " " + versionStyle.Render("editing ") + side + "\n\n")

	for i, name := range leverNames {
		cursor := "  "
		nameStyle := leverLabelStyle
		if i == m.selected {
			cursor = leverActiveStyle.Render("> ")
			nameStyle = leverActiveStyle
		}

		bv := leverValue(m.baseline, i)
		sv := leverValue(m.scenario, i)

		b.WriteString(fmt.Sprintf("%s%s\n", cursor, nameStyle.Render(name)))
		b.WriteString(fmt.Sprintf("    %s %s  %s\n",
			baselineStyle.Render(leverBar(bv)), leverValueStyle.Render(fmt.Sprintf("%.2f", bv)),
			versionStyle.Render("baseline")))
		b.WriteString(fmt.Sprintf("    %s %s  %s\n",
			scenarioStyle.Render(leverBar(sv)), leverValueStyle.Render(fmt.Sprintf("%.2f", sv)),
			versionStyle.Render("scenario")))
	}

	return panelStyle.Width(leftPanelWidth).Render(b.String())
}

// leverBar renders a 20-cell bar for a lever value in [0,1].
func leverBar(v float64) string {
	const cells = 20
	filled := int(v*cells + 0.5)
	if filled > cells {
		filled = cells
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", cells-filled)
}

// renderSummary renders terminal figures and headline indicators.
func (m Model) renderSummary() string {
	var b strings.Builder

	b.WriteString(metricLabelStyle.Render("Summary") + "\n\n")

	if m.err != nil {
		b.WriteString(lossStyle.Render(m.err.Error()))
		return panelStyle.Width(leftPanelWidth).Render(b.String())
	}

	s := m.result.Summary
	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s %s\n",
			metricLabelStyle.Render(fmt.Sprintf("%-18s", label)),
			metricValueStyle.Render(value)))
	}

	row("Baseline", format.FormatColonies(s.BaselineColonies))
	row("Scenario", format.FormatColonies(s.ScenarioColonies))

	deltaStyle := gainStyle
	if s.ColoniesDelta < 0 {
		deltaStyle = lossStyle
	}
	b.WriteString(fmt.Sprintf("%s %s\n",
		metricLabelStyle.Render(fmt.Sprintf("%-18s", "Delta")),
		deltaStyle.Render(fmt.Sprintf("%s (%.1f%%)", format.FormatSigned(s.ColoniesDelta), m.ind.ColoniesDeltaPct))))

	row("Cumulative", format.FormatCHF(s.CumulativeLossCHF))
	row("Honey delta", format.FormatTons(s.CumulativeHoneyLossTons))
	if m.ind.PeakAnnualLossCHF > 0 {
		row("Worst year", fmt.Sprintf("%d (%s)", m.ind.PeakLossYear, format.FormatCHF(m.ind.PeakAnnualLossCHF)))
	}
	if m.ind.ScenarioCollapsed {
		b.WriteString(lossStyle.Render("scenario collapsed") + "\n")
	}

	// System resource sparklines under the figures.
	b.WriteString("\n")
	b.WriteString(metricLabelStyle.Render("cpu ") + cpuSparkStyle.Render(RenderSparkline(m.cpuHistory.Slice())) + "\n")
	b.WriteString(metricLabelStyle.Render("mem ") + memSparkStyle.Render(RenderSparkline(m.memHistory.Slice())))

	return panelStyle.Width(leftPanelWidth).Render(b.String())
}

// renderChart renders both colony trajectories as overlaid braille layers.
func (m Model) renderChart(height int) string {
	width := m.width - leftPanelWidth - 4
	if width < 10 {
		width = 10
	}
	rows := height - 4
	if rows < 3 {
		rows = 3
	}

	var b strings.Builder
	b.WriteString(metricLabelStyle.Render("Colonies over time  ") +
		versionStyle.Render("baseline and scenario, scaled to carrying capacity") + "\n")

	if m.result != nil {
		peak := m.constants.CarryingCapacity
		baseVals := make([]float64, len(m.result.Series.Baseline))
		scenVals := make([]float64, len(m.result.Series.Scenario))
		for i := range m.result.Series.Baseline {
			baseVals[i] = m.result.Series.Baseline[i].Colonies
			scenVals[i] = m.result.Series.Scenario[i].Colonies
		}

		lines := RenderBrailleOverlay(
			NormalizeSeries(baseVals, peak), NormalizeSeries(scenVals, peak), width, rows)
		for _, line := range lines {
			b.WriteString(baselineStyle.Render(line) + "\n")
		}

		b.WriteString("\n" + metricLabelStyle.Render("cumulative loss ") +
			lossStyle.Render(RenderSparkline(normalizedCumulativeLoss(m.result))))
	}

	return panelStyle.Width(width + 2).Render(b.String())
}

// renderFooter renders the key help line.
func (m Model) renderFooter() string {
	keys := []struct{ key, desc string }{
		{"tab", "lever"},
		{"+/-", "adjust"},
		{"b/s", "side"},
		{"[/]", "horizon"},
		{"r", "reset"},
		{"q", "quit"},
	}

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = footerKeyStyle.Render(k.key) + footerDescStyle.Render(" "+k.desc)
	}
	return lipgloss.NewStyle().Width(m.width).Render(strings.Join(parts, footerDescStyle.Render("  ·  ")))
}

// normalizedCumulativeLoss scales the cumulative economic shortfall magnitudes
// into 0..100 for sparkline rendering.
func normalizedCumulativeLoss(result *orchestration.SimulationResult) []float64 {
	vals := make([]float64, len(result.Series.Loss))
	var peak float64
	for i, lp := range result.Series.Loss {
		vals[i] = math.Abs(lp.CumulativeEconomicLossCHF)
		if vals[i] > peak {
			peak = vals[i]
		}
	}
	return NormalizeSeries(vals, peak)
}

// leverValue extracts the i-th lever of a configuration, in the order the
// lever rows are displayed.
func leverValue(lc model.LeverConfig, i int) float64 {
	switch i {
	case 0:
		return lc.EnvironmentStress
	case 1:
		return lc.DiseaseManagement
	default:
		return lc.ClimateFactor
	}
}
