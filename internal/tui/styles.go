package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/beesim/internal/ui"
)

// Style variables for the TUI dashboard.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle       lipgloss.Style
	headerStyle      lipgloss.Style
	titleStyle       lipgloss.Style
	versionStyle     lipgloss.Style
	elapsedStyle     lipgloss.Style
	leverLabelStyle  lipgloss.Style
	leverValueStyle  lipgloss.Style
	leverActiveStyle lipgloss.Style
	baselineStyle    lipgloss.Style
	scenarioStyle    lipgloss.Style
	metricLabelStyle lipgloss.Style
	metricValueStyle lipgloss.Style
	lossStyle        lipgloss.Style
	gainStyle        lipgloss.Style
	footerKeyStyle   lipgloss.Style
	footerDescStyle  lipgloss.Style
	cpuSparkStyle    lipgloss.Style
	memSparkStyle    lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Background(t.Bg).
		Foreground(t.Text)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Background(t.Bg).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	elapsedStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	leverLabelStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	leverValueStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	leverActiveStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	baselineStyle = lipgloss.NewStyle().
		Foreground(t.Baseline)

	scenarioStyle = lipgloss.NewStyle().
		Foreground(t.Scenario)

	metricLabelStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	metricValueStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	lossStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	gainStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	cpuSparkStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	memSparkStyle = lipgloss.NewStyle().
		Foreground(t.Warning)
}
