// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/ghsuggest/internal/core/domain"
)

// FetchCompleted carries the outcome of a debounced suggest call.
// Seq identifies the query it was issued for; stale results are dropped.
type FetchCompleted struct {
	Seq    uint64
	Result domain.SuggestResult
	Err    error
}

// SettingsChanged carries reloaded search settings after the config file
// changed on disk.
type SettingsChanged struct {
	Settings domain.SearchSettings
	Err      error
}

// URLOpened reports the outcome of opening a suggestion in the browser.
type URLOpened struct {
	URL string
	Err error
}

// ErrorOccurred reports a non-fatal error raised outside the update loop,
// such as the config watcher stopping.
type ErrorOccurred struct {
	Err error
}
