package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/catfish/internal/core"
)

// KeyMap defines the key bindings for the chase.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Dash      key.Binding
	Pause     key.Binding
	Restart   key.Binding
	HardReset key.Binding
	BuySpeed  key.Binding
	BuyLives  key.Binding
	BuyMagnet key.Binding
	Snapshot  key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Dash, k.Pause, k.HardReset, k.Snapshot, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Dash},
		{k.Pause, k.Restart, k.HardReset},
		{k.BuySpeed, k.BuyLives, k.BuyMagnet},
		{k.Snapshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("wasd/arrows", "move"),
		),
		Down:  key.NewBinding(key.WithKeys("s", "down")),
		Left:  key.NewBinding(key.WithKeys("a", "left")),
		Right: key.NewBinding(key.WithKeys("d", "right")),
		Dash: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "dash"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play again"),
		),
		HardReset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset run"),
		),
		BuySpeed: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "buy speed"),
		),
		BuyLives: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "buy lives"),
		),
		BuyMagnet: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "buy magnet"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "snapshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a simulation action.
// Keys without a simulation meaning (quit, snapshot) map to core.ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Dash):
		return core.ActionDash
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.HardReset):
		return core.ActionHardReset
	case key.Matches(msg, k.BuySpeed):
		return core.ActionBuySpeed
	case key.Matches(msg, k.BuyLives):
		return core.ActionBuyLives
	case key.Matches(msg, k.BuyMagnet):
		return core.ActionBuyMagnet
	}
	return core.ActionNone
}
