package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keybindings for the tap counter UI.
type keyMap struct {
	Tap         key.Binding
	MeterBeat   key.Binding
	MeterDouble key.Binding
	MeterWaltz  key.Binding
	MeterCommon key.Binding
	CycleMeter  key.Binding
	Method      key.Binding
	Reset       key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Tap: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "tap"),
		),
		MeterBeat: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "beat"),
		),
		MeterDouble: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "double"),
		),
		MeterWaltz: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "waltz"),
		),
		MeterCommon: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "common"),
		),
		CycleMeter: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "meter"),
		),
		Method: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "method"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
