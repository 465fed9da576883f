package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the dashboard.
type KeyMap struct {
	Quit       key.Binding
	NextLever  key.Binding
	PrevLever  key.Binding
	Increase   key.Binding
	Decrease   key.Binding
	ToggleSide key.Binding
	HorizonUp  key.Binding
	HorizonDn  key.Binding
	Reset      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		NextLever: key.NewBinding(
			key.WithKeys("tab", "down", "j"),
			key.WithHelp("tab", "next lever"),
		),
		PrevLever: key.NewBinding(
			key.WithKeys("shift+tab", "up", "k"),
			key.WithHelp("shift+tab", "prev lever"),
		),
		Increase: key.NewBinding(
			key.WithKeys("+", "=", "right", "l"),
			key.WithHelp("+", "increase lever"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("-", "left", "h"),
			key.WithHelp("-", "decrease lever"),
		),
		ToggleSide: key.NewBinding(
			key.WithKeys("b", "s"),
			key.WithHelp("b/s", "edit baseline or scenario"),
		),
		HorizonUp: key.NewBinding(
			key.WithKeys("Y", "]"),
			key.WithHelp("]", "longer horizon"),
		),
		HorizonDn: key.NewBinding(
			key.WithKeys("y", "["),
			key.WithHelp("[", "shorter horizon"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset to presets"),
		),
	}
}
