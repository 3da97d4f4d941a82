package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Dec      key.Binding
	Inc      key.Binding
	Edit     key.Binding
	Reset    key.Binding
	NextTab  key.Binding
	TableTab key.Binding
	ChartTab key.Binding
	RatesTab key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "previous input"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "next input"),
	),
	Dec: key.NewBinding(
		key.WithKeys("h", "left", "-"),
		key.WithHelp("h/←", "decrease"),
	),
	Inc: key.NewBinding(
		key.WithKeys("l", "right", "+"),
		key.WithHelp("l/→", "increase"),
	),
	Edit: key.NewBinding(
		key.WithKeys("enter", "e"),
		key.WithHelp("enter", "type activities amount"),
	),
	Reset: key.NewBinding(
		key.WithKeys("0"),
		key.WithHelp("0", "reset inputs"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next tab"),
	),
	TableTab: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "table"),
	),
	ChartTab: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "chart"),
	),
	RatesTab: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rates"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Inc, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Dec, k.Inc, k.Edit, k.Reset},
		{k.NextTab, k.TableTab, k.ChartTab, k.RatesTab, k.Help, k.Quit},
	}
}

var _ help.KeyMap = keyMap{}
