// Package loader provides the loading indicator shown while suggestions
// are being fetched.
package loader

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/ghsuggest/internal/adapters/driving/tui/styles"
)

// Label follows the spinner glyph.
const Label = "Loading suggestions…"

// Loader wraps a bubbles spinner. It only animates while active, so an idle
// widget does not keep the event loop busy with ticks.
type Loader struct {
	spinner spinner.Model
	active  bool
}

// New creates an inactive loader.
func New(s *styles.Styles) *Loader {
	if s == nil {
		s = styles.DefaultStyles()
	}
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(s.Spinner),
	)
	return &Loader{spinner: sp}
}

// Start activates the loader and returns the first tick command.
// Starting an active loader returns nil so only one tick chain runs.
func (l *Loader) Start() tea.Cmd {
	if l.active {
		return nil
	}
	l.active = true
	return l.spinner.Tick
}

// Stop deactivates the loader; pending ticks are dropped on arrival.
func (l *Loader) Stop() {
	l.active = false
}

// Active reports whether the loader is animating.
func (l *Loader) Active() bool {
	return l.active
}

// Update advances the animation on spinner ticks.
func (l *Loader) Update(msg tea.Msg) (*Loader, tea.Cmd) {
	tick, ok := msg.(spinner.TickMsg)
	if !ok || !l.active {
		return l, nil
	}
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(tick)
	return l, cmd
}

// View renders the spinner and label.
func (l *Loader) View() string {
	return l.spinner.View() + " " + Label
}
