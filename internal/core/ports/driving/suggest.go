package driving

import (
	"context"

	"github.com/custodia-labs/ghsuggest/internal/core/domain"
)

// SuggestService produces the merged suggestion list for a query.
type SuggestService interface {
	// Suggest searches repositories and users and returns them merged and
	// sorted by display name. Queries below the configured minimum length
	// return domain.ErrQueryTooShort without issuing any request.
	Suggest(ctx context.Context, query string) (domain.SuggestResult, error)

	// Settings returns the search settings currently in effect.
	Settings() domain.SearchSettings

	// Configure replaces the search settings used by subsequent calls.
	Configure(settings domain.SearchSettings) error
}
