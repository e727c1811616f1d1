package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrQueryTooShort indicates the query is below the minimum length
	// and no request was issued.
	ErrQueryTooShort = errors.New("query too short")

	// ErrSearchUnavailable indicates the search API is not configured.
	ErrSearchUnavailable = errors.New("search API unavailable")

	// ErrBothSearchesFailed indicates neither the repository nor the user
	// search returned results.
	ErrBothSearchesFailed = errors.New("repository and user searches failed")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrUnknownSetting indicates a settings key is not recognised.
	ErrUnknownSetting = errors.New("unknown setting")
)
