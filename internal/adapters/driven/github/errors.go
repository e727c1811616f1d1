package github

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/custodia-labs/ghsuggest/internal/core/domain"
)

// GitHub-specific errors.
var (
	// ErrInvalidBaseURL indicates the configured API base URL cannot be parsed.
	ErrInvalidBaseURL = errors.New("github: invalid base URL")

	// ErrEmptyQuery indicates a search was attempted with an empty query.
	ErrEmptyQuery = errors.New("github: empty search query")
)

// RateLimitError represents a rate limit exceeded error with reset time.
type RateLimitError struct {
	ResetAt   time.Time
	Remaining int
	Limit     int
}

func (e *RateLimitError) Error() string {
	if e.ResetAt.IsZero() {
		return "github: rate limit exceeded"
	}
	return fmt.Sprintf("github: rate limit exceeded, resets at %s", e.ResetAt.Format(time.RFC3339))
}

// Unwrap lets callers match the error against domain.ErrRateLimited.
func (e *RateLimitError) Unwrap() error {
	return domain.ErrRateLimited
}

// APIError represents a GitHub API error response.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// IsNotFound checks if the error indicates a resource was not found.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}

// IsValidationFailed checks if the API rejected the query (HTTP 422),
// e.g. a query consisting only of whitespace or qualifiers.
func IsValidationFailed(err error) bool {
	return hasStatus(err, http.StatusUnprocessableEntity)
}

func hasStatus(err error, status int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}
	return false
}
