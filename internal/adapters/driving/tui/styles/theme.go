// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the autocomplete widget.
type Theme struct {
	// Accent highlights the active suggestion and the header.
	Accent lipgloss.Color

	// Repository marks repository rows.
	Repository lipgloss.Color

	// User marks user rows.
	User lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for descriptions, hints and help.
	Muted lipgloss.Color

	// Star colours the star count.
	Star lipgloss.Color

	// Error indicates failed searches.
	Error lipgloss.Color

	// Border is the input and dropdown border colour.
	Border lipgloss.Color

	// Bar is the status bar background.
	Bar lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:     lipgloss.Color("#7C3AED"), // Purple
		Repository: lipgloss.Color("#06B6D4"), // Cyan
		User:       lipgloss.Color("#A6E3A1"), // Green
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Star:       lipgloss.Color("#F9E2AF"), // Yellow
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"),
		Bar:        lipgloss.Color("#181825"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Header is the title above the input.
	Header lipgloss.Style

	// InputField wraps the search input.
	InputField lipgloss.Style

	// Dropdown wraps the suggestion list and its placeholders.
	Dropdown lipgloss.Style

	// Row is an inactive suggestion row.
	Row lipgloss.Style

	// ActiveRow is the highlighted suggestion row.
	ActiveRow lipgloss.Style

	// RepoBadge marks repository rows.
	RepoBadge lipgloss.Style

	// UserBadge marks user rows.
	UserBadge lipgloss.Style

	// Stars renders star counts.
	Stars lipgloss.Style

	// Description renders repository descriptions.
	Description lipgloss.Style

	// Hint renders the minimum length prompt.
	Hint lipgloss.Style

	// Empty renders the no match message.
	Empty lipgloss.Style

	// Error renders error messages.
	Error lipgloss.Style

	// Spinner colours the loading indicator.
	Spinner lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for key help.
	Help lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent).
			MarginBottom(1),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Dropdown: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(theme.Border).
			BorderTop(false).
			BorderLeft(true).
			BorderRight(true).
			BorderBottom(true).
			Padding(0, 1),

		Row: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		ActiveRow: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Accent),

		RepoBadge: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Repository),

		UserBadge: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.User),

		Stars: lipgloss.NewStyle().
			Foreground(theme.Star),

		Description: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Hint: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Empty: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Spinner: lipgloss.NewStyle().
			Foreground(theme.Accent),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Bar).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
