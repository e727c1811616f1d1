package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/ghsuggest/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/ghsuggest/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/ghsuggest/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ghsuggest/internal/adapters/driving/tui/views/autocomplete"
	"github.com/custodia-labs/ghsuggest/internal/logger"
)

// Title is the header shown above the search box.
const Title = "Search for any GitHub user or repository"

// App is the composition shell following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the global bindings.
	keymap *keymap.KeyMap

	// view is the autocomplete widget.
	view *autocomplete.View

	// err holds the last error reported through ErrorOccurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates the first window size arrived.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	view, err := autocomplete.NewView(s, km, ports.Suggest, ports.Opener)
	if err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: s,
		keymap: km,
		view:   view,
	}, nil
}

// WithContext sets the context fetches run under.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.view.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("ghsuggest"),
		a.view.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.view.SetDimensions(msg.Width, msg.Height-a.headerHeight())
		return a, nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), a.keymap.Quit) {
			a.view.Close()
			return a, tea.Quit
		}

	case tea.MouseMsg:
		// The view measures rows from its own top edge.
		msg.Y -= a.headerHeight()
		a.view, cmd = a.view.Update(msg)
		return a, cmd

	case messages.SettingsChanged:
		if msg.Err == nil {
			if err := a.ports.Suggest.Configure(msg.Settings); err != nil {
				msg.Err = fmt.Errorf("apply settings: %w", err)
			} else {
				logger.Info("Settings reloaded")
			}
		}
		a.view, cmd = a.view.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		logger.Warn("%v", msg.Err)
		a.err = msg.Err
		a.view, cmd = a.view.Update(msg)
		return a, cmd
	}

	a.view, cmd = a.view.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, a.header(), a.view.View())
}

func (a *App) header() string {
	return a.styles.Header.Render(Title)
}

func (a *App) headerHeight() int {
	return lipgloss.Height(a.header())
}

// NewProgram creates a full-screen program with mouse support for the app.
func (a *App) NewProgram(opts ...tea.ProgramOption) *tea.Program {
	base := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(a.ctx),
	}
	return tea.NewProgram(a, append(base, opts...)...)
}

// Run starts the TUI application.
func (a *App) Run() error {
	_, err := a.NewProgram().Run()
	return err
}

// AutocompleteView returns the hosted widget.
func (a *App) AutocompleteView() *autocomplete.View {
	return a.view
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.Update(tea.WindowSizeMsg{Width: width, Height: height})
}
