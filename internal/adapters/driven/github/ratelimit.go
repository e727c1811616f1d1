package github

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// SearchRateLimit is the unauthenticated search budget per minute.
	SearchRateLimit = 10

	// SearchBurst is how many requests may go out back to back:
	// one repository and user pair.
	SearchBurst = 2

	// HeaderRateLimit is the rate limit header.
	HeaderRateLimit = "X-RateLimit-Limit"

	// HeaderRateRemaining is the remaining requests header.
	HeaderRateRemaining = "X-RateLimit-Remaining"

	// HeaderRateReset is the reset timestamp header (Unix seconds).
	HeaderRateReset = "X-RateLimit-Reset"

	// HeaderRetryAfter is the retry-after header (seconds).
	HeaderRetryAfter = "Retry-After"
)

// RateLimiter implements dual-strategy rate limiting for the search API.
type RateLimiter struct {
	mu        sync.Mutex
	remaining int           // From API header
	limit     int           // From API header
	resetTime time.Time     // From API header
	bucket    *rate.Limiter // Proactive throttling
	now       func() time.Time
}

// NewRateLimiter creates a rate limiter allowing perMinute requests with the given burst.
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = SearchRateLimit
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		remaining: perMinute, // Assume full quota initially
		limit:     perMinute,
		bucket:    rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), burst),
		now:       time.Now,
	}
}

// NewSearchRateLimiter creates a rate limiter for the unauthenticated search budget.
func NewSearchRateLimiter() *RateLimiter {
	return NewRateLimiter(SearchRateLimit, SearchBurst)
}

// Wait blocks until the token bucket admits a request.
// If the API reported an exhausted budget that has not reset yet, it fails
// fast with a RateLimitError instead of waiting for the reset.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	remaining := r.remaining
	limit := r.limit
	resetTime := r.resetTime
	now := r.now()
	r.mu.Unlock()

	if remaining <= 0 && now.Before(resetTime) {
		return &RateLimitError{ResetAt: resetTime, Remaining: remaining, Limit: limit}
	}

	return r.bucket.Wait(ctx)
}

// UpdateFromResponse updates rate limit state from response headers.
func (r *RateLimiter) UpdateFromResponse(resp *http.Response) {
	if resp == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if remaining := resp.Header.Get(HeaderRateRemaining); remaining != "" {
		if val, err := strconv.Atoi(remaining); err == nil {
			r.remaining = val
		}
	}

	if limit := resp.Header.Get(HeaderRateLimit); limit != "" {
		if val, err := strconv.Atoi(limit); err == nil {
			r.limit = val
		}
	}

	if reset := resp.Header.Get(HeaderRateReset); reset != "" {
		if val, err := strconv.ParseInt(reset, 10, 64); err == nil {
			r.resetTime = time.Unix(val, 0)
		}
	}
}

// CheckRateLimit checks if the response indicates rate limiting.
// Returns a RateLimitError if rate limited, nil otherwise.
func (r *RateLimiter) CheckRateLimit(resp *http.Response) error {
	if resp == nil {
		return nil
	}

	r.UpdateFromResponse(resp)

	r.mu.Lock()
	resetTime := r.resetTime
	remaining := r.remaining
	limit := r.limit
	now := r.now()
	r.mu.Unlock()

	if resp.StatusCode != http.StatusTooManyRequests &&
		(resp.StatusCode != http.StatusForbidden || remaining != 0) {
		return nil
	}

	if retryAfter := resp.Header.Get(HeaderRetryAfter); retryAfter != "" {
		if seconds, err := strconv.Atoi(retryAfter); err == nil {
			resetTime = now.Add(time.Duration(seconds) * time.Second)
		}
	}

	return &RateLimitError{
		ResetAt:   resetTime,
		Remaining: remaining,
		Limit:     limit,
	}
}

// Remaining returns the current remaining requests.
func (r *RateLimiter) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.remaining
}

// Limit returns the rate limit.
func (r *RateLimiter) Limit() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.limit
}

// ResetTime returns the rate limit reset time.
func (r *RateLimiter) ResetTime() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resetTime
}
