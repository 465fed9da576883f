// Package tui implements the interactive terminal dashboard. Levers and
// horizon are edited live; every change recomputes the comparison
// synchronously, which the engine is fast enough to absorb between frames.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/agbru/beesim/internal/errors"
	"github.com/agbru/beesim/internal/metrics"
	"github.com/agbru/beesim/internal/model"
	"github.com/agbru/beesim/internal/orchestration"
	"github.com/agbru/beesim/internal/sysmon"
)

// Lever editing granularity and horizon bounds.
const (
	leverStep   = 0.05
	horizonStep = 5
	minYears    = 1
	maxYears    = 500

	sysHistoryLen = 60
)

// leverCount is the number of editable levers per trajectory.
const leverCount = 3

// TickMsg drives periodic system stat sampling.
type TickMsg time.Time

// SysStatsMsg carries one system resource sample.
type SysStatsMsg sysmon.Stats

// Model is the root bubbletea model for the dashboard.
type Model struct {
	baseline model.LeverConfig
	scenario model.LeverConfig
	years    int

	constants model.Constants
	result    *orchestration.SimulationResult
	ind       metrics.Indicators
	err       error

	// selected is the lever row under the cursor; editScenario picks which
	// trajectory the cursor edits.
	selected     int
	editScenario bool

	keymap KeyMap

	cpuHistory *RingBuffer
	memHistory *RingBuffer

	parentCtx context.Context
	startTime time.Time
	version   string
	exitCode  int

	width  int
	height int
}

// NewModel creates a dashboard model with the given starting configuration.
func NewModel(ctx context.Context, baseline, scenario model.LeverConfig, years int, constants model.Constants, version string) Model {
	m := Model{
		baseline:   baseline,
		scenario:   scenario,
		years:      years,
		constants:  constants,
		keymap:     DefaultKeyMap(),
		cpuHistory: NewRingBuffer(sysHistoryLen),
		memHistory: NewRingBuffer(sysHistoryLen),
		parentCtx:  ctx,
		startTime:  time.Now(),
		version:    version,
		exitCode:   apperrors.ExitSuccess,
	}
	m.recompute()
	return m
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m, tea.Batch(sampleSysStatsCmd(), tickCmd())

	case SysStatsMsg:
		m.cpuHistory.Push(msg.CPUPercent)
		m.memHistory.Push(msg.MemPercent)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.NextLever):
		m.selected = (m.selected + 1) % leverCount
		return m, nil

	case key.Matches(msg, m.keymap.PrevLever):
		m.selected = (m.selected + leverCount - 1) % leverCount
		return m, nil

	case key.Matches(msg, m.keymap.ToggleSide):
		// "b" targets the baseline, "s" the scenario.
		m.editScenario = msg.String() != "b"
		return m, nil

	case key.Matches(msg, m.keymap.Increase):
		m.adjustLever(leverStep)
		m.recompute()
		return m, nil

	case key.Matches(msg, m.keymap.Decrease):
		m.adjustLever(-leverStep)
		m.recompute()
		return m, nil

	case key.Matches(msg, m.keymap.HorizonUp):
		m.years = min(m.years+horizonStep, maxYears)
		m.recompute()
		return m, nil

	case key.Matches(msg, m.keymap.HorizonDn):
		m.years = max(m.years-horizonStep, minYears)
		m.recompute()
		return m, nil

	case key.Matches(msg, m.keymap.Reset):
		m.baseline = model.BaselinePreset()
		m.scenario = model.ScenarioPreset()
		m.recompute()
		return m, nil
	}

	return m, nil
}

// adjustLever moves the selected lever of the active trajectory by delta,
// clamped to [0,1].
func (m *Model) adjustLever(delta float64) {
	target := &m.baseline
	if m.editScenario {
		target = &m.scenario
	}

	var v *float64
	switch m.selected {
	case 0:
		v = &target.EnvironmentStress
	case 1:
		v = &target.DiseaseManagement
	default:
		v = &target.ClimateFactor
	}

	*v += delta
	if *v < 0 {
		*v = 0
	}
	if *v > 1 {
		*v = 1
	}
}

// recompute reruns the comparison with the current levers and horizon.
func (m *Model) recompute() {
	result, err := orchestration.Compare(m.parentCtx, m.baseline, m.scenario,
		m.years, m.constants.InitialColonies, m.constants)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.result = result
	m.ind = metrics.Compute(result)
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	left := lipgloss.JoinVertical(lipgloss.Left, m.renderLevers(), m.renderSummary())
	right := m.renderChart(lipgloss.Height(left))

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, baseline, scenario model.LeverConfig, years int, constants model.Constants, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	m := NewModel(ctx, baseline, scenario, years, constants, version)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}

	if fm, ok := finalModel.(Model); ok {
		return fm.exitCode
	}
	return apperrors.ExitSuccess
}

// tickCmd returns a command that sends a TickMsg after 500ms.
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd reads system-wide CPU and memory stats.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return SysStatsMsg(sysmon.Sample())
	}
}
