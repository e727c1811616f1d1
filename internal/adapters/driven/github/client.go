package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/ghsuggest/internal/core/domain"
	"github.com/custodia-labs/ghsuggest/internal/core/ports/driven"
	"github.com/custodia-labs/ghsuggest/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.SearchAPI = (*Client)(nil)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = domain.DefaultRequestTimeout

// Client wraps the go-github search service with rate limiting.
type Client struct {
	gh          *gh.Client
	rateLimiter *RateLimiter
}

// Option configures a Client.
type Option func(*options)

type options struct {
	baseURL     string
	httpClient  *http.Client
	timeout     time.Duration
	rateLimiter *RateLimiter
}

// WithBaseURL points the client at another API root (GitHub Enterprise, tests).
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithTimeout sets the per-request timeout for the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithRateLimiter replaces the default search rate limiter.
func WithRateLimiter(r *RateLimiter) Option {
	return func(o *options) { o.rateLimiter = r }
}

// NewClient creates an anonymous GitHub search client.
func NewClient(opts ...Option) (*Client, error) {
	o := options{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}

	client := gh.NewClient(httpClient)
	if o.baseURL != "" {
		u, err := parseBaseURL(o.baseURL)
		if err != nil {
			return nil, err
		}
		client.BaseURL = u
	}

	rl := o.rateLimiter
	if rl == nil {
		rl = NewSearchRateLimiter()
	}

	return &Client{gh: client, rateLimiter: rl}, nil
}

// NewClientFromSettings creates a client configured from application settings.
func NewClientFromSettings(settings domain.APISettings) (*Client, error) {
	return NewClient(WithBaseURL(settings.BaseURL), WithTimeout(settings.Timeout))
}

// parseBaseURL validates the API root and ensures the trailing slash go-github requires.
func parseBaseURL(raw string) (*url.URL, error) {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, raw)
	}
	return u, nil
}

// SearchRepositories queries /search/repositories.
func (c *Client) SearchRepositories(ctx context.Context, query string, perPage int) ([]domain.Suggestion, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, c.wrapError(err, "search repositories")
	}

	logger.Debug("GET search/repositories q=%q per_page=%d", query, perPage)
	result, resp, err := c.gh.Search.Repositories(ctx, query, searchOptions(perPage))
	c.updateRateLimitFromResponse(resp)
	if err != nil {
		return nil, c.wrapError(err, "search repositories")
	}
	if result == nil {
		return []domain.Suggestion{}, nil
	}

	logger.Debug("search/repositories returned %d of %d", len(result.Repositories), result.GetTotal())
	return repositorySuggestions(result.Repositories), nil
}

// SearchUsers queries /search/users.
func (c *Client) SearchUsers(ctx context.Context, query string, perPage int) ([]domain.Suggestion, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, c.wrapError(err, "search users")
	}

	logger.Debug("GET search/users q=%q per_page=%d", query, perPage)
	result, resp, err := c.gh.Search.Users(ctx, query, searchOptions(perPage))
	c.updateRateLimitFromResponse(resp)
	if err != nil {
		return nil, c.wrapError(err, "search users")
	}
	if result == nil {
		return []domain.Suggestion{}, nil
	}

	logger.Debug("search/users returned %d of %d", len(result.Users), result.GetTotal())
	return userSuggestions(result.Users), nil
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.gh.BaseURL.String()
}

func searchOptions(perPage int) *gh.SearchOptions {
	if perPage <= 0 {
		perPage = domain.DefaultPerPage
	}
	return &gh.SearchOptions{
		ListOptions: gh.ListOptions{PerPage: perPage},
	}
}

// updateRateLimitFromResponse updates the rate limiter from GitHub response headers.
func (c *Client) updateRateLimitFromResponse(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.rateLimiter.UpdateFromResponse(resp.Response)
}

// wrapError converts go-github errors to our error types.
func (c *Client) wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var ownRateLimitErr *RateLimitError
	if errors.As(err, &ownRateLimitErr) {
		return err
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{
			ResetAt:   rateLimitErr.Rate.Reset.Time,
			Remaining: rateLimitErr.Rate.Remaining,
			Limit:     rateLimitErr.Rate.Limit,
		}
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		resetAt := time.Time{}
		if abuseErr.RetryAfter != nil {
			resetAt = time.Now().Add(*abuseErr.RetryAfter)
		}
		return &RateLimitError{
			ResetAt:   resetAt,
			Remaining: c.rateLimiter.Remaining(),
			Limit:     c.rateLimiter.Limit(),
		}
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		apiErr := &APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    ghErr.Message,
		}
		if ghErr.Response.Request != nil {
			apiErr.URL = ghErr.Response.Request.URL.String()
		}
		if rlErr := c.rateLimiter.CheckRateLimit(ghErr.Response); rlErr != nil {
			return rlErr
		}
		return apiErr
	}

	return fmt.Errorf("%s: %w", operation, err)
}
