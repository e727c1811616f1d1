// Package input provides the search box component for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/ghsuggest/internal/adapters/driving/tui/styles"
)

// Placeholder is shown while the search box is empty.
const Placeholder = "Search for a user or repository"

// CharLimit caps the query length; the search API rejects longer queries.
const CharLimit = 256

// SearchInput wraps a bubbles textinput with search box styling.
type SearchInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewSearchInput creates a focused search box.
func NewSearchInput(s *styles.Styles) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = Placeholder
	ti.Prompt = "⌕ "
	ti.CharLimit = CharLimit
	ti.Width = 50
	ti.Focus()

	return &SearchInput{
		textinput: ti,
		styles:    s,
		width:     54,
	}
}

// Init starts the cursor blinking.
func (s *SearchInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards msg to the text input and reports whether the value
// changed as a result.
func (s *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd, bool) {
	before := s.textinput.Value()
	var cmd tea.Cmd
	s.textinput, cmd = s.textinput.Update(msg)
	return s, cmd, s.textinput.Value() != before
}

// View renders the bordered search box.
func (s *SearchInput) View() string {
	// Width excludes the border.
	return s.styles.InputField.Width(s.width - 2).Render(s.textinput.View())
}

// Value returns the current query.
func (s *SearchInput) Value() string {
	return s.textinput.Value()
}

// SetValue replaces the query and moves the cursor to the end.
func (s *SearchInput) SetValue(value string) {
	s.textinput.SetValue(value)
	s.textinput.CursorEnd()
}

// Focus sets focus on the input.
func (s *SearchInput) Focus() tea.Cmd {
	return s.textinput.Focus()
}

// Blur removes focus from the input.
func (s *SearchInput) Blur() {
	s.textinput.Blur()
}

// Focused returns whether the input is focused.
func (s *SearchInput) Focused() bool {
	return s.textinput.Focused()
}

// SetWidth sets the outer width of the search box.
func (s *SearchInput) SetWidth(width int) {
	if width < 24 {
		width = 24
	}
	s.width = width
	// Border, padding, prompt and the trailing cursor cell.
	s.textinput.Width = width - 5 - len([]rune(s.textinput.Prompt))
}

// Width returns the outer width.
func (s *SearchInput) Width() int {
	return s.width
}

// Height returns the rendered height including borders.
func (s *SearchInput) Height() int {
	return 3
}

// Reset clears the input.
func (s *SearchInput) Reset() {
	s.textinput.Reset()
}
