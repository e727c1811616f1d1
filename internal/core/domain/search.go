package domain

import "errors"

// Endpoint names one of the two search endpoints.
type Endpoint string

const (
	// EndpointRepositories is the repository search endpoint.
	EndpointRepositories Endpoint = "repositories"

	// EndpointUsers is the user search endpoint.
	EndpointUsers Endpoint = "users"
)

// SuggestResult is the merged outcome of one repository + user search.
type SuggestResult struct {
	// BatchID correlates the two requests issued for one query.
	BatchID string

	// Query is the query the suggestions were fetched for.
	Query string

	// Suggestions is the merged list, sorted by display name.
	Suggestions []Suggestion

	// RepositoryErr is set when the repository search failed.
	RepositoryErr error

	// UserErr is set when the user search failed.
	UserErr error
}

// Partial reports whether exactly one of the two endpoints failed.
func (r SuggestResult) Partial() bool {
	return (r.RepositoryErr == nil) != (r.UserErr == nil)
}

// Err returns the joined endpoint errors, or nil if both searches succeeded.
func (r SuggestResult) Err() error {
	return errors.Join(r.RepositoryErr, r.UserErr)
}

// Len returns the number of suggestions.
func (r SuggestResult) Len() int {
	return len(r.Suggestions)
}
