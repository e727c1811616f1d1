package autocomplete

import (
	"fmt"

	"github.com/custodia-labs/ghsuggest/internal/core/domain"
)

// Body identifies what is drawn below the search box.
type Body int

const (
	// BodyNone draws nothing; the user has not typed yet.
	BodyNone Body = iota
	// BodyHint asks for more characters.
	BodyHint
	// BodyLoading shows the loading indicator.
	BodyLoading
	// BodyError reports a failed fetch that left no suggestions to show.
	BodyError
	// BodyList shows the suggestions.
	BodyList
	// BodyEmpty reports that nothing matched the query.
	BodyEmpty
)

// String returns the string representation of the body.
func (b Body) String() string {
	switch b {
	case BodyNone:
		return "none"
	case BodyHint:
		return "hint"
	case BodyLoading:
		return "loading"
	case BodyError:
		return "error"
	case BodyList:
		return "list"
	case BodyEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Classify derives the body from state. It is evaluated on every render
// and never cached.
func Classify(s State) Body {
	switch {
	case !s.Visible:
		return BodyNone
	case !s.CanFetch():
		return BodyHint
	case s.Pending, s.Status == domain.StatusLoading:
		return BodyLoading
	case s.Err != nil && len(s.Suggestions) == 0:
		return BodyError
	case len(s.Suggestions) > 0:
		return BodyList
	default:
		return BodyEmpty
	}
}

// HintText is shown while the query is below the minimum length.
func HintText(minQueryLength int) string {
	return fmt.Sprintf("Enter %d or more characters", minQueryLength)
}

// EmptyText is shown when a completed search matched nothing.
func EmptyText(query string) string {
	return fmt.Sprintf("Sorry, there is no option matching your search query %s!", query)
}

// ErrorText is shown when a search failed and no suggestions remain.
func ErrorText(err error) string {
	return fmt.Sprintf("Could not load suggestions: %v", err)
}
