// Package list provides the suggestion dropdown for the TUI.
package list

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/custodia-labs/ghsuggest/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ghsuggest/internal/core/domain"
)

// LinesPerRow is the fixed height of one suggestion. Keeping it constant
// lets mouse clicks map to rows without re-rendering.
const LinesPerRow = 2

const (
	repoMarker = "◆"
	userMarker = "●"
	indent     = "    "
)

// SuggestionList renders a window of suggestions around the active one.
type SuggestionList struct {
	items  []domain.Suggestion
	active int
	styles *styles.Styles
	width  int
	height int
}

// NewSuggestionList creates an empty list.
func NewSuggestionList(s *styles.Styles) *SuggestionList {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &SuggestionList{
		styles: s,
		width:  60,
		height: 10,
	}
}

// SetItems replaces the rendered suggestions and the active index.
func (l *SuggestionList) SetItems(items []domain.Suggestion, active int) {
	l.items = items
	l.active = active
}

// SetDimensions sets the width in columns and height in lines.
func (l *SuggestionList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of suggestions.
func (l *SuggestionList) Count() int {
	return len(l.items)
}

// VisibleRows returns how many suggestions fit in the height.
func (l *SuggestionList) VisibleRows() int {
	rows := l.height / LinesPerRow
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Window returns the half-open range of item indices currently shown.
// The window scrolls just enough to keep the active item visible.
func (l *SuggestionList) Window() (start, end int) {
	visible := l.VisibleRows()
	if l.active >= visible {
		start = l.active - visible + 1
	}
	end = start + visible
	if end > len(l.items) {
		end = len(l.items)
	}
	return start, end
}

// IndexAt maps a line offset within the rendered list to an item index.
func (l *SuggestionList) IndexAt(line int) (int, bool) {
	if line < 0 {
		return 0, false
	}
	start, end := l.Window()
	idx := start + line/LinesPerRow
	if idx >= end {
		return 0, false
	}
	return idx, true
}

// View renders the visible rows.
func (l *SuggestionList) View() string {
	start, end := l.Window()
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, l.renderRow(l.items[i], i == l.active))
	}
	return strings.Join(rows, "\n")
}

func (l *SuggestionList) renderRow(s domain.Suggestion, active bool) string {
	indicator := "  "
	if active {
		indicator = "› "
	}

	marker := l.styles.UserBadge.Render(userMarker)
	detail := s.AccountType
	var stars string
	if s.IsRepository() {
		marker = l.styles.RepoBadge.Render(repoMarker)
		detail = s.Description
		stars = "★ " + FormatStars(s.Stars)
	}

	nameWidth := l.width - lipgloss.Width(indicator) - 2
	if stars != "" {
		nameWidth -= lipgloss.Width(stars) + 2
	}
	name := ansi.Truncate(s.Name(), max(nameWidth, 8), "…")
	detail = ansi.Truncate(detail, max(l.width-len(indent), 8), "…")

	rowStyle := l.styles.Row
	if active {
		rowStyle = l.styles.ActiveRow
	}

	first := indicator + marker + " " + rowStyle.Render(name)
	if stars != "" {
		gap := l.width - lipgloss.Width(first) - lipgloss.Width(stars)
		if gap < 2 {
			gap = 2
		}
		first += strings.Repeat(" ", gap) + l.styles.Stars.Render(stars)
	}
	second := indent + l.styles.Description.Render(detail)

	return first + "\n" + second
}

// FormatStars groups a star count with commas, e.g. 1234567 -> "1,234,567".
func FormatStars(stars int) string {
	return humanize.Comma(int64(stars))
}
