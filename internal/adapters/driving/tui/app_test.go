package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ghsuggest/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/ghsuggest/internal/adapters/driving/tui/views/autocomplete"
	"github.com/custodia-labs/ghsuggest/internal/core/domain"
)

func newTestApp(t *testing.T, svc *MockSuggestService) *App {
	t.Helper()
	app, err := NewApp(NewPorts(svc, nil))
	require.NoError(t, err)
	t.Cleanup(app.AutocompleteView().Close)
	return app
}

func sendKeys(app *App, text string) {
	for _, r := range text {
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNewApp_Success(t *testing.T) {
	app := newTestApp(t, &MockSuggestService{})

	assert.False(t, app.Ready())
	assert.NoError(t, app.Err())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{})

	assert.ErrorIs(t, err, ErrMissingSuggestService)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app := newTestApp(t, &MockSuggestService{})

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Equal(t, app, app.WithContext(ctx))
}

func TestApp_Init(t *testing.T) {
	app := newTestApp(t, &MockSuggestService{})

	assert.NotNil(t, app.Init())
}

func TestApp_View_BeforeReady(t *testing.T) {
	app := newTestApp(t, &MockSuggestService{})

	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_View_ShowsHeader(t *testing.T) {
	app := newTestApp(t, &MockSuggestService{})

	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.True(t, app.Ready())
	assert.Contains(t, app.View(), Title)
	assert.Contains(t, app.View(), "Search for a user or repository")
}

func TestApp_CtrlCQuits(t *testing.T) {
	app := newTestApp(t, &MockSuggestService{})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_ForwardsTyping(t *testing.T) {
	app := newTestApp(t, &MockSuggestService{})
	app.SetDimensions(100, 30)

	sendKeys(app, "ab")

	assert.Equal(t, "ab", app.AutocompleteView().State().Query)
	assert.Contains(t, app.View(), "Enter 3 or more characters")
}

func TestApp_SettingsChangedConfiguresService(t *testing.T) {
	svc := &MockSuggestService{}
	app := newTestApp(t, svc)
	settings := domain.DefaultAppSettings().Search
	settings.MinQueryLength = 5
	settings.Debounce = time.Second

	app.Update(messages.SettingsChanged{Settings: settings})

	require.Len(t, svc.configured, 1)
	assert.Equal(t, settings, svc.configured[0])
	assert.Equal(t, 5, app.AutocompleteView().State().MinQueryLength)
}

func TestApp_SettingsChangedConfigureError(t *testing.T) {
	svc := &MockSuggestService{
		ConfigureFunc: func(domain.SearchSettings) error { return domain.ErrInvalidInput },
	}
	app := newTestApp(t, svc)
	app.SetDimensions(120, 30)

	app.Update(messages.SettingsChanged{Settings: domain.SearchSettings{}})

	assert.Contains(t, app.View(), "apply settings")
	assert.Equal(t, 3, app.AutocompleteView().State().MinQueryLength)
}

func TestApp_SettingsChangedWithErrorSkipsConfigure(t *testing.T) {
	svc := &MockSuggestService{}
	app := newTestApp(t, svc)

	app.Update(messages.SettingsChanged{Err: errors.New("parse")})

	assert.Empty(t, svc.configured)
}

func TestApp_ErrorOccurred(t *testing.T) {
	app := newTestApp(t, &MockSuggestService{})
	app.SetDimensions(120, 30)
	boom := errors.New("watch config: boom")

	_, cmd := app.Update(messages.ErrorOccurred{Err: boom})

	assert.Nil(t, cmd)
	assert.ErrorIs(t, app.Err(), boom)
	assert.Contains(t, app.View(), "Error: watch config: boom")
}

func TestApp_MouseOffsetByHeader(t *testing.T) {
	svc := &MockSuggestService{}
	app := newTestApp(t, svc)
	app.SetDimensions(100, 30)
	view := app.AutocompleteView()

	// Deliver a result directly so no timers are involved.
	sendKeys(app, "react")
	app.Update(messages.FetchCompleted{Seq: view.State().Seq, Result: domain.SuggestResult{
		Suggestions: []domain.Suggestion{
			domain.NewUserSuggestion(1, "react-first", "", "User", ""),
			domain.NewUserSuggestion(2, "react-second", "", "User", ""),
		},
	}})
	require.Equal(t, autocomplete.BodyList, autocomplete.Classify(view.State()))

	// Header (2 lines) + input (3 lines) + one row (2 lines).
	app.Update(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress, Y: 2 + 3 + 2})

	assert.Equal(t, "react-second", view.State().Query)
}
