package tui

import (
	"context"
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/beesim/internal/model"
)

func newModelUnderTest(t *testing.T) Model {
	t.Helper()
	return NewModel(context.Background(),
		model.BaselinePreset(), model.ScenarioPreset(), 20, model.DefaultConstants(), "test")
}

func keyMsg(s string) tea.KeyMsg {
	if s == "tab" {
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm
}

func TestNewModel_ComputesInitialResult(t *testing.T) {
	m := newModelUnderTest(t)

	if m.err != nil {
		t.Fatalf("initial recompute failed: %v", m.err)
	}
	if m.result == nil {
		t.Fatal("initial result should be computed")
	}
	if len(m.result.Series.Baseline) != 21 {
		t.Errorf("baseline length = %d, want 21", len(m.result.Series.Baseline))
	}
}

func TestModel_LeverSelectionCycles(t *testing.T) {
	m := newModelUnderTest(t)

	m = update(t, m, keyMsg("tab"))
	if m.selected != 1 {
		t.Errorf("selected = %d after one tab, want 1", m.selected)
	}
	m = update(t, m, keyMsg("tab"))
	m = update(t, m, keyMsg("tab"))
	if m.selected != 0 {
		t.Errorf("selected = %d after three tabs, want 0 (wrapped)", m.selected)
	}
}

func TestModel_AdjustLeverRecomputes(t *testing.T) {
	m := newModelUnderTest(t)
	before := m.result.Summary.ScenarioColonies

	// "s" targets the scenario side, then raise environment stress.
	m = update(t, m, keyMsg("s"))
	m = update(t, m, keyMsg("+"))

	if math.Abs(m.scenario.EnvironmentStress-0.85) > 1e-9 {
		t.Errorf("scenario stress = %g, want 0.85", m.scenario.EnvironmentStress)
	}
	if m.result.Summary.ScenarioColonies >= before {
		t.Errorf("raising stress should reduce terminal scenario colonies: %g -> %g",
			before, m.result.Summary.ScenarioColonies)
	}
}

func TestModel_LeverClampedAtBounds(t *testing.T) {
	m := newModelUnderTest(t)

	m = update(t, m, keyMsg("b"))
	for i := 0; i < 30; i++ {
		m = update(t, m, keyMsg("+"))
	}
	if m.baseline.EnvironmentStress != 1 {
		t.Errorf("stress = %g after many increases, want clamp at 1", m.baseline.EnvironmentStress)
	}

	for i := 0; i < 60; i++ {
		m = update(t, m, keyMsg("-"))
	}
	if m.baseline.EnvironmentStress != 0 {
		t.Errorf("stress = %g after many decreases, want clamp at 0", m.baseline.EnvironmentStress)
	}
}

func TestModel_HorizonBounds(t *testing.T) {
	m := newModelUnderTest(t)

	for i := 0; i < 200; i++ {
		m = update(t, m, keyMsg("]"))
	}
	if m.years != 500 {
		t.Errorf("years = %d, want cap at 500", m.years)
	}
	if len(m.result.Series.Baseline) != 501 {
		t.Errorf("series length = %d, want 501", len(m.result.Series.Baseline))
	}

	for i := 0; i < 200; i++ {
		m = update(t, m, keyMsg("["))
	}
	if m.years != 1 {
		t.Errorf("years = %d, want floor at 1", m.years)
	}
}

func TestModel_ResetRestoresPresets(t *testing.T) {
	m := newModelUnderTest(t)

	m = update(t, m, keyMsg("b"))
	m = update(t, m, keyMsg("+"))
	m = update(t, m, keyMsg("r"))

	if m.baseline != model.BaselinePreset() {
		t.Errorf("baseline after reset = %+v, want preset", m.baseline)
	}
	if m.scenario != model.ScenarioPreset() {
		t.Errorf("scenario after reset = %+v, want preset", m.scenario)
	}
}

func TestModel_QuitReturnsQuitCmd(t *testing.T) {
	m := newModelUnderTest(t)

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("quit should produce a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
}

func TestModel_SysStatsFeedHistory(t *testing.T) {
	m := newModelUnderTest(t)

	m = update(t, m, SysStatsMsg{CPUPercent: 42, MemPercent: 33})
	if m.cpuHistory.Len() != 1 || m.memHistory.Len() != 1 {
		t.Errorf("history lengths = %d/%d, want 1/1", m.cpuHistory.Len(), m.memHistory.Len())
	}
}

func TestModel_ViewBeforeSizing(t *testing.T) {
	m := newModelUnderTest(t)
	if m.View() != "Initializing..." {
		t.Errorf("View before WindowSizeMsg = %q", m.View())
	}
}

func TestModel_ViewRendersPanels(t *testing.T) {
	m := newModelUnderTest(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	view := m.View()
	for _, want := range []string{"BeeSim Dashboard", "Levers", "Summary", "Colonies over time"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}
