package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/thenoetrevino/leadboard/internal/config"
)

// keyMap binds the configured keys. Arrow keys always navigate.
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	PickUp  key.Binding
	Cancel  key.Binding
	Open    key.Binding
	Add     key.Binding
	Refresh key.Binding
	Dismiss key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", km.PrevLead),
			key.WithHelp("↑/"+km.PrevLead, "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", km.NextLead),
			key.WithHelp("↓/"+km.NextLead, "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", km.PrevColumn),
			key.WithHelp("←/"+km.PrevColumn, "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", km.NextColumn),
			key.WithHelp("→/"+km.NextColumn, "right"),
		),
		PickUp: key.NewBinding(
			key.WithKeys(km.PickUp),
			key.WithHelp(km.PickUp, "pick up / drop"),
		),
		Cancel: key.NewBinding(
			key.WithKeys(km.CancelDrag),
			key.WithHelp(km.CancelDrag, "cancel drag"),
		),
		Open: key.NewBinding(
			key.WithKeys(km.OpenLead),
			key.WithHelp(km.OpenLead, "open lead"),
		),
		Add: key.NewBinding(
			key.WithKeys(km.AddLead),
			key.WithHelp(km.AddLead, "add lead"),
		),
		Refresh: key.NewBinding(
			key.WithKeys(km.RefreshBoard),
			key.WithHelp(km.RefreshBoard, "refresh"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys(km.DismissNotification),
			key.WithHelp(km.DismissNotification, "dismiss"),
		),
		Help: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(km.Quit, "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PickUp, k.Open, k.Add, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PickUp, k.Cancel, k.Open, k.Add},
		{k.Refresh, k.Dismiss, k.Help, k.Quit},
	}
}
