// Package status provides the status bar for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/custodia-labs/ghsuggest/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/ghsuggest/internal/adapters/driving/tui/styles"
)

// Bar displays the active suggestion's link or the last error, with
// keybinding hints on the right.
type Bar struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	err    error
	link   string
	count  int
	width  int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	right := s.styles.Help.Render(keymap.HelpLine(s.keymap.ShortHelp()))
	rightLen := lipgloss.Width(right)

	left := s.renderLeft(s.width - rightLen - 3)
	padding := s.width - lipgloss.Width(left) - rightLen - 2
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft(room int) string {
	if room < 10 {
		room = 10
	}
	switch {
	case s.err != nil:
		return s.styles.Error.Render(ansi.Truncate(fmt.Sprintf("Error: %v", s.err), room, "…"))
	case s.link != "":
		return s.styles.Row.Render(ansi.Truncate(s.link, room, "…"))
	case s.count > 0:
		return s.styles.Row.Render(fmt.Sprintf("%d suggestions", s.count))
	default:
		return s.styles.Help.Render("Ready")
	}
}

// SetError sets or clears the error shown on the left.
func (s *Bar) SetError(err error) {
	s.err = err
}

// Err returns the error being shown.
func (s *Bar) Err() error {
	return s.err
}

// SetLink sets the active suggestion's URL.
func (s *Bar) SetLink(link string) {
	s.link = link
}

// Link returns the active suggestion's URL.
func (s *Bar) Link() string {
	return s.link
}

// SetCount sets the number of suggestions.
func (s *Bar) SetCount(count int) {
	s.count = count
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to its ready state.
func (s *Bar) Clear() {
	s.err = nil
	s.link = ""
	s.count = 0
}
