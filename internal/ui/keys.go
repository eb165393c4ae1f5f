package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the queue view.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PlayPause  key.Binding
	Next       key.Binding
	Previous   key.Binding
	Shuffle    key.Binding
	Repeat     key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
	Mute       key.Binding
	Play       key.Binding
	Remove     key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "move down"),
		),
		PlayPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
		Next: key.NewBinding(
			key.WithKeys("n", "pgdown"),
			key.WithHelp("n", "next track"),
		),
		Previous: key.NewBinding(
			key.WithKeys("p", "pgup"),
			key.WithHelp("p", "previous track"),
		),
		Shuffle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle shuffle"),
		),
		Repeat: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "cycle repeat"),
		),
		VolumeUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "volume up"),
		),
		VolumeDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "volume down"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle mute"),
		),
		Play: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play selected"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "remove selected"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
