package driven

import (
	"context"

	"github.com/custodia-labs/ghsuggest/internal/core/domain"
)

// SearchAPI queries the remote search endpoints.
// A response without an items field yields an empty slice, not an error.
type SearchAPI interface {
	// SearchRepositories returns repository suggestions for the query.
	SearchRepositories(ctx context.Context, query string, perPage int) ([]domain.Suggestion, error)

	// SearchUsers returns user suggestions for the query.
	SearchUsers(ctx context.Context, query string, perPage int) ([]domain.Suggestion, error)
}
