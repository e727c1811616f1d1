package domain

import (
	"fmt"
	"time"
)

// Default search settings.
const (
	// DefaultPerPage is the page size requested from each search endpoint.
	DefaultPerPage = 25

	// MaxPerPage is the largest page size the search API accepts.
	MaxPerPage = 100

	// DefaultMinQueryLength is the query length at which requests start.
	DefaultMinQueryLength = 3

	// DefaultDebounce is the quiet period after the last keystroke.
	DefaultDebounce = 300 * time.Millisecond

	// DefaultLocale is the collation locale for sorting suggestions.
	DefaultLocale = "en-US"

	// DefaultAPIBaseURL is the public GitHub REST API.
	DefaultAPIBaseURL = "https://api.github.com/"

	// DefaultRequestTimeout bounds a single search request.
	DefaultRequestTimeout = 15 * time.Second
)

// SearchSettings holds search behaviour configuration.
type SearchSettings struct {
	// PerPage is the page size for each of the two search requests.
	PerPage int

	// MinQueryLength is the number of characters required before searching.
	MinQueryLength int

	// Debounce is the quiet period before a query is dispatched.
	Debounce time.Duration

	// Locale is the BCP 47 tag used to collate display names.
	Locale string
}

// APISettings holds search API connection configuration.
type APISettings struct {
	// BaseURL is the REST API root, e.g. https://api.github.com/.
	BaseURL string

	// Timeout bounds each HTTP request.
	Timeout time.Duration
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Search holds search behaviour settings.
	Search SearchSettings

	// API holds search API settings.
	API APISettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Search: SearchSettings{
			PerPage:        DefaultPerPage,
			MinQueryLength: DefaultMinQueryLength,
			Debounce:       DefaultDebounce,
			Locale:         DefaultLocale,
		},
		API: APISettings{
			BaseURL: DefaultAPIBaseURL,
			Timeout: DefaultRequestTimeout,
		},
	}
}

// Validate checks the search settings are usable.
func (s SearchSettings) Validate() error {
	if s.PerPage < 1 || s.PerPage > MaxPerPage {
		return fmt.Errorf("%w: per_page must be between 1 and %d", ErrInvalidInput, MaxPerPage)
	}
	if s.MinQueryLength < 1 {
		return fmt.Errorf("%w: min_query_length must be positive", ErrInvalidInput)
	}
	if s.Debounce < 0 {
		return fmt.Errorf("%w: debounce must not be negative", ErrInvalidInput)
	}
	if s.Locale == "" {
		return fmt.Errorf("%w: locale is required", ErrInvalidInput)
	}
	return nil
}

// Validate checks the settings are usable.
func (s AppSettings) Validate() error {
	if err := s.Search.Validate(); err != nil {
		return err
	}
	if s.API.BaseURL == "" {
		return fmt.Errorf("%w: base_url is required", ErrInvalidInput)
	}
	if s.API.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidInput)
	}
	return nil
}
