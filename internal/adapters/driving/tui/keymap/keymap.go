// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the autocomplete widget.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Up moves the active suggestion up.
	Up key.Binding

	// Down moves the active suggestion down.
	Down key.Binding

	// Select puts the active suggestion into the input.
	Select key.Binding

	// Clear empties the input and hides the suggestions.
	Clear key.Binding

	// Open launches the active suggestion's page in a browser.
	Open key.Binding
}

// DefaultKeyMap returns the default keybindings.
// Letters stay free for typing, so navigation uses arrows and ctrl chords.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Open: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "open"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Clear, k.Quit}
}

// FullHelp returns the full list of keybindings.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Clear, k.Open, k.Quit},
	}
}

// HelpLine formats bindings as "key action" pairs separated by " • ".
func HelpLine(bindings []key.Binding) string {
	line := ""
	for i, b := range bindings {
		if i > 0 {
			line += " • "
		}
		h := b.Help()
		line += h.Key + " " + h.Desc
	}
	return line
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
