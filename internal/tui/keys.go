package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the playground key bindings.
type KeyMap struct {
	Run        key.Binding
	Flip       key.Binding
	Loader     key.Binding
	Dialog     key.Binding
	CountOne   key.Binding
	CountTwo   key.Binding
	Multiplier key.Binding
	Copy       key.Binding
	Escape     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap is the standard binding set.
var DefaultKeyMap = KeyMap{
	Run: key.NewBinding(
		key.WithKeys("r", "enter"),
		key.WithHelp("r", "run"),
	),
	Flip: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "flip"),
	),
	Loader: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "loader"),
	),
	Dialog: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "dialog"),
	),
	CountOne: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "counter A"),
	),
	CountTwo: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "counter B"),
	),
	Multiplier: key.NewBinding(
		key.WithKeys("m", "tab"),
		key.WithHelp("m", "speed"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Help: key.NewBinding(
		key.WithKeys("?", "h"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// hints returns the footer key hints in display order. The two counter
// keys collapse into one hint to keep the footer on a single line.
func (k KeyMap) hints() []KeyHint {
	bindings := []key.Binding{k.Run, k.Flip, k.Loader, k.Dialog}
	hints := make([]KeyHint, 0, len(bindings)+5)
	for _, b := range bindings {
		hints = append(hints, KeyHint{Key: b.Help().Key, Label: b.Help().Desc})
	}
	hints = append(hints, KeyHint{Key: "1/2", Label: "count"})
	for _, b := range []key.Binding{k.Multiplier, k.Copy, k.Help, k.Quit} {
		hints = append(hints, KeyHint{Key: b.Help().Key, Label: b.Help().Desc})
	}
	return hints
}
