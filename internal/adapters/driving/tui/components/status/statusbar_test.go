package status

import (
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ghsuggest/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/ghsuggest/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.NoError(t, bar.Err())
	assert.Equal(t, "", bar.Link())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilDependencies(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestBar_View_Ready(t *testing.T) {
	bar := NewBar(nil, nil)

	view := bar.View()

	assert.Contains(t, view, "Ready")
	assert.Contains(t, view, "ctrl+c quit")
}

func TestBar_View_Priority(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)

	bar.SetCount(3)
	assert.Contains(t, bar.View(), "3 suggestions")

	bar.SetLink("https://github.com/octocat")
	assert.Contains(t, bar.View(), "https://github.com/octocat")
	assert.NotContains(t, bar.View(), "3 suggestions")

	bar.SetError(errors.New("rate limited"))
	assert.Contains(t, bar.View(), "Error: rate limited")
	assert.NotContains(t, bar.View(), "octocat")
}

func TestBar_View_FitsWidth(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(90)
	bar.SetError(errors.New("a very long error message that keeps going and going and going and going"))

	assert.Equal(t, 90, lipgloss.Width(bar.View()))
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetError(errors.New("boom"))
	bar.SetLink("https://github.com")
	bar.SetCount(2)

	bar.Clear()

	assert.NoError(t, bar.Err())
	assert.Equal(t, "", bar.Link())
	assert.Contains(t, bar.View(), "Ready")
}
