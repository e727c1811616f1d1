package autocomplete

import (
	"errors"
	"unicode/utf8"

	"github.com/custodia-labs/ghsuggest/internal/core/domain"
	"github.com/custodia-labs/ghsuggest/internal/debounce"
)

// State is an immutable snapshot of the widget. Reduce never mutates the
// snapshot it is given, including the Suggestions backing array.
type State struct {
	// Query is the text in the search box.
	Query string

	// Suggestions is the merged list from the last accepted fetch.
	Suggestions []domain.Suggestion

	// Active is the highlighted suggestion, always within the list bounds.
	Active int

	// Visible is false until the user first types and after Dismissed.
	Visible bool

	// Status is the request lifecycle state.
	Status domain.Status

	// Err is the error of the last failed fetch. The list it failed to
	// replace is kept.
	Err error

	// PartialErr is set when one of the two searches failed but the other
	// produced the current list.
	PartialErr error

	// Seq identifies the latest query. Fetch results tagged with an older
	// Seq are discarded.
	Seq uint64

	// Pending is true when a fetch for Seq should be dispatched.
	Pending bool

	// MinQueryLength is the rune count at which fetching starts.
	MinQueryLength int
}

// NewState returns the initial state.
func NewState(minQueryLength int) State {
	if minQueryLength < 1 {
		minQueryLength = domain.DefaultMinQueryLength
	}
	return State{MinQueryLength: minQueryLength}
}

// CanFetch reports whether the query is long enough to search for.
func (s State) CanFetch() bool {
	return utf8.RuneCountInString(s.Query) >= s.MinQueryLength
}

// ActiveSuggestion returns the highlighted suggestion, if any.
func (s State) ActiveSuggestion() (domain.Suggestion, bool) {
	if s.Active < 0 || s.Active >= len(s.Suggestions) {
		return domain.Suggestion{}, false
	}
	return s.Suggestions[s.Active], true
}

// Action is an event the reducer understands.
type Action interface {
	action()
}

// InputChanged is dispatched whenever the search box text changes.
type InputChanged struct {
	Query string
}

// FetchStarted is dispatched when the fetch for Seq is scheduled.
type FetchStarted struct {
	Seq uint64
}

// FetchSucceeded carries a merged result for the query tagged Seq.
type FetchSucceeded struct {
	Seq    uint64
	Result domain.SuggestResult
}

// FetchFailed carries the error for the query tagged Seq.
type FetchFailed struct {
	Seq uint64
	Err error
}

// KeyNavigated moves the active suggestion by Delta.
type KeyNavigated struct {
	Delta int
}

// OptionSelected puts the suggestion at Index into the search box.
type OptionSelected struct {
	Index int
}

// Dismissed clears the search box and hides the list.
type Dismissed struct{}

// MinLengthChanged applies a new minimum query length from settings.
type MinLengthChanged struct {
	MinQueryLength int
}

func (InputChanged) action()     {}
func (FetchStarted) action()     {}
func (FetchSucceeded) action()   {}
func (FetchFailed) action()      {}
func (KeyNavigated) action()     {}
func (OptionSelected) action()   {}
func (Dismissed) action()        {}
func (MinLengthChanged) action() {}

// Reduce returns the state that results from applying a to s.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case InputChanged:
		s.Query = a.Query
		s.Active = 0
		s.Visible = true
		return s.requery()

	case FetchStarted:
		if a.Seq != s.Seq || !s.Pending {
			return s
		}
		s.Pending = false
		s.Status = domain.StatusLoading
		s.Err = nil
		return s

	case FetchSucceeded:
		if a.Seq != s.Seq || s.Status != domain.StatusLoading {
			return s
		}
		// A failed repository search is a failure even when users came back;
		// an already shown list stays in place.
		if a.Result.RepositoryErr != nil && len(s.Suggestions) > 0 {
			s.Status = domain.StatusError
			s.Err = a.Result.RepositoryErr
			s.PartialErr = nil
			return s
		}
		s.Suggestions = a.Result.Suggestions
		s.Active = 0
		s.Status = domain.StatusIdle
		s.Err = nil
		s.PartialErr = a.Result.Err()
		return s

	case FetchFailed:
		if a.Seq != s.Seq || s.Status != domain.StatusLoading {
			return s
		}
		switch {
		case errors.Is(a.Err, debounce.ErrSuperseded), errors.Is(a.Err, debounce.ErrStopped):
			// A newer query owns the status.
			return s
		case errors.Is(a.Err, domain.ErrQueryTooShort):
			s.Status = domain.StatusIdle
			return s
		}
		s.Status = domain.StatusError
		s.Err = a.Err
		return s

	case KeyNavigated:
		if len(s.Suggestions) == 0 {
			return s
		}
		s.Active = clamp(s.Active+a.Delta, 0, len(s.Suggestions)-1)
		return s

	case OptionSelected:
		if a.Index < 0 || a.Index >= len(s.Suggestions) {
			return s
		}
		s.Query = s.Suggestions[a.Index].Name()
		s.Active = 0
		return s.requery()

	case Dismissed:
		s.Query = ""
		s.Suggestions = nil
		s.Active = 0
		s.Visible = false
		s.Status = domain.StatusIdle
		s.Err = nil
		s.PartialErr = nil
		s.Pending = false
		s.Seq++
		return s

	case MinLengthChanged:
		if a.MinQueryLength < 1 || a.MinQueryLength == s.MinQueryLength {
			return s
		}
		s.MinQueryLength = a.MinQueryLength
		if s.Visible {
			return s.requery()
		}
		return s
	}
	return s
}

// requery starts a new query generation for the current text. In-flight
// results for older generations become stale.
func (s State) requery() State {
	s.Seq++
	s.Pending = s.CanFetch()
	if !s.Pending {
		s.Status = domain.StatusIdle
		s.Err = nil
	}
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
