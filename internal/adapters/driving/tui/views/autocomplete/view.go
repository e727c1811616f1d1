package autocomplete

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/ghsuggest/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/ghsuggest/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/ghsuggest/internal/adapters/driving/tui/components/loader"
	"github.com/custodia-labs/ghsuggest/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/ghsuggest/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/ghsuggest/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/ghsuggest/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ghsuggest/internal/core/domain"
	"github.com/custodia-labs/ghsuggest/internal/core/ports/driven"
	"github.com/custodia-labs/ghsuggest/internal/core/ports/driving"
	"github.com/custodia-labs/ghsuggest/internal/debounce"
	"github.com/custodia-labs/ghsuggest/internal/logger"
)

// View is the search box with its suggestion dropdown and status bar.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	input     *input.SearchInput
	list      *list.SuggestionList
	loader    *loader.Loader
	statusbar *status.Bar

	suggest   driving.SuggestService
	opener    driven.URLOpener
	debouncer *debounce.Debouncer[string, domain.SuggestResult]

	ctx    context.Context
	cancel context.CancelFunc

	state  State
	width  int
	height int
}

// NewView creates the autocomplete view. opener may be nil, in which case
// the open binding does nothing.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	suggest driving.SuggestService,
	opener driven.URLOpener,
) (*View, error) {
	if suggest == nil {
		return nil, ErrNoSuggestService
	}
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	settings := suggest.Settings()
	ctx, cancel := context.WithCancel(context.Background())

	v := &View{
		styles:    s,
		keymap:    km,
		input:     input.NewSearchInput(s),
		list:      list.NewSuggestionList(s),
		loader:    loader.New(s),
		statusbar: status.NewBar(s, km),
		suggest:   suggest,
		opener:    opener,
		ctx:       ctx,
		cancel:    cancel,
		state:     NewState(settings.MinQueryLength),
		width:     80,
		height:    24,
	}
	v.debouncer = debounce.New(v.fetch, settings.Debounce)
	v.layout()
	return v, nil
}

// WithContext makes fetches inherit ctx. It replaces the view's own context.
func (v *View) WithContext(ctx context.Context) *View {
	v.cancel()
	v.ctx, v.cancel = context.WithCancel(ctx)
	return v
}

// Init starts the cursor blinking.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Close drops any pending fetch and cancels in-flight ones.
func (v *View) Close() {
	v.debouncer.Stop()
	v.cancel()
}

// State returns the current state snapshot.
func (v *View) State() State {
	return v.state
}

// Update handles input, fetch results and spinner ticks.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg)

	case tea.MouseMsg:
		return v.handleMouse(msg)

	case messages.FetchCompleted:
		if msg.Err != nil {
			if !errors.Is(msg.Err, debounce.ErrSuperseded) {
				logger.Debug("Fetch %d failed: %v", msg.Seq, msg.Err)
			}
			return v.dispatch(FetchFailed{Seq: msg.Seq, Err: msg.Err})
		}
		return v.dispatch(FetchSucceeded{Seq: msg.Seq, Result: msg.Result})

	case messages.SettingsChanged:
		return v.applySettings(msg)

	case messages.URLOpened:
		if msg.Err != nil {
			v.statusbar.SetError(msg.Err)
		}
		return v, nil

	case messages.ErrorOccurred:
		if msg.Err != nil {
			v.statusbar.SetError(msg.Err)
		}
		return v, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		v.loader, cmd = v.loader.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Up):
		return v.dispatch(KeyNavigated{Delta: -1})
	case keymap.Matches(keyStr, v.keymap.Down):
		return v.dispatch(KeyNavigated{Delta: 1})
	case keymap.Matches(keyStr, v.keymap.Select):
		if Classify(v.state) != BodyList {
			return v, nil
		}
		return v.dispatch(OptionSelected{Index: v.state.Active})
	case keymap.Matches(keyStr, v.keymap.Clear):
		v.debouncer.Stop()
		return v.dispatch(Dismissed{})
	case keymap.Matches(keyStr, v.keymap.Open):
		return v, v.openActive()
	}

	var cmd tea.Cmd
	var changed bool
	v.input, cmd, changed = v.input.Update(msg)
	if !changed {
		return v, cmd
	}
	next, fetchCmd := v.dispatch(InputChanged{Query: v.input.Value()})
	return next, tea.Batch(cmd, fetchCmd)
}

// handleMouse expects Y relative to the top of this view.
func (v *View) handleMouse(msg tea.MouseMsg) (*View, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		return v.dispatch(KeyNavigated{Delta: -1})
	case msg.Button == tea.MouseButtonWheelDown:
		return v.dispatch(KeyNavigated{Delta: 1})
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		if Classify(v.state) != BodyList {
			return v, nil
		}
		idx, ok := v.list.IndexAt(msg.Y - v.input.Height())
		if !ok {
			return v, nil
		}
		return v.dispatch(OptionSelected{Index: idx})
	}
	return v, nil
}

// dispatch reduces a and schedules whatever the new state asks for.
func (v *View) dispatch(a Action) (*View, tea.Cmd) {
	v.state = Reduce(v.state, a)

	var cmds []tea.Cmd
	if v.state.Pending {
		seq, query := v.state.Seq, v.state.Query
		v.state = Reduce(v.state, FetchStarted{Seq: seq})
		cmds = append(cmds, v.schedule(seq, query))
	}
	if v.state.Status == domain.StatusLoading {
		cmds = append(cmds, v.loader.Start())
	} else {
		v.loader.Stop()
	}
	if !v.state.CanFetch() {
		// Nothing to wait for; drop the pending timer.
		v.debouncer.Stop()
	}

	v.sync()
	return v, tea.Batch(cmds...)
}

// schedule calls the debouncer synchronously so supersession follows
// keystroke order, then waits for the result off the event loop.
func (v *View) schedule(seq uint64, query string) tea.Cmd {
	deferred := v.debouncer.Call(v.ctx, query)
	ctx := v.ctx
	return func() tea.Msg {
		result, err := deferred.Wait(ctx)
		return messages.FetchCompleted{Seq: seq, Result: result, Err: err}
	}
}

func (v *View) fetch(ctx context.Context, query string) (domain.SuggestResult, error) {
	return v.suggest.Suggest(ctx, query)
}

func (v *View) applySettings(msg messages.SettingsChanged) (*View, tea.Cmd) {
	if msg.Err != nil {
		v.statusbar.SetError(msg.Err)
		return v, nil
	}
	v.debouncer.SetWait(msg.Settings.Debounce)
	return v.dispatch(MinLengthChanged{MinQueryLength: msg.Settings.MinQueryLength})
}

func (v *View) openActive() tea.Cmd {
	if v.opener == nil || Classify(v.state) != BodyList {
		return nil
	}
	s, ok := v.state.ActiveSuggestion()
	if !ok || s.HTMLURL == "" {
		return nil
	}
	opener := v.opener
	link := s.HTMLURL
	return func() tea.Msg {
		return messages.URLOpened{URL: link, Err: opener.Open(link)}
	}
}

// sync pushes the state snapshot into the child components.
func (v *View) sync() {
	if v.input.Value() != v.state.Query {
		v.input.SetValue(v.state.Query)
	}
	v.list.SetItems(v.state.Suggestions, v.state.Active)

	v.statusbar.Clear()
	v.statusbar.SetCount(len(v.state.Suggestions))
	if s, ok := v.state.ActiveSuggestion(); ok && Classify(v.state) == BodyList {
		v.statusbar.SetLink(s.HTMLURL)
	}
	switch {
	case v.state.Err != nil:
		v.statusbar.SetError(v.state.Err)
	case v.state.PartialErr != nil:
		v.statusbar.SetError(v.state.PartialErr)
	}
}

// SetDimensions sets the size available to the view.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.layout()
}

func (v *View) layout() {
	v.input.SetWidth(v.width)
	v.statusbar.SetWidth(v.width)
	// Dropdown side borders, padding and bottom border.
	bodyHeight := v.height - v.input.Height() - 1 - 1
	v.list.SetDimensions(v.width-4, max(bodyHeight, list.LinesPerRow))
}

// View renders the search box, dropdown body and status bar.
func (v *View) View() string {
	parts := []string{v.input.View()}
	if body := v.renderBody(); body != "" {
		parts = append(parts, body)
	}
	parts = append(parts, v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (v *View) renderBody() string {
	var content string
	switch Classify(v.state) {
	case BodyNone:
		return ""
	case BodyHint:
		content = v.styles.Hint.Render(HintText(v.state.MinQueryLength))
	case BodyLoading:
		content = v.loader.View()
	case BodyError:
		content = v.styles.Error.Render(ErrorText(v.state.Err))
	case BodyList:
		content = v.list.View()
	case BodyEmpty:
		content = v.styles.Empty.Render(EmptyText(v.state.Query))
	}
	return v.styles.Dropdown.Width(v.width - 2).Render(content)
}
