// Package github implements the driven SearchAPI port against the GitHub
// REST search endpoints.
//
// # Endpoints
//
// Two endpoints are queried, each with the free-text query and a page size:
//
//   - GET /search/repositories?q={query}&per_page={n}
//   - GET /search/users?q={query}&per_page={n}
//
// Both return a JSON body with an "items" array. Items are mapped into
// [domain.Suggestion] values: repositories carry full name, owner avatar,
// description and star count; users carry login, avatar and the API's
// "type" marker. A body without items is treated as no results.
//
// # Authentication
//
// Requests are anonymous. The unauthenticated search budget is 10 requests
// per minute per client IP.
//
// # Rate Limiting
//
// The client implements a dual-strategy rate limiting approach:
//
//  1. Proactive throttling: a token bucket refilled at the search budget
//     rate with a burst of two, so one repository + user pair goes out
//     immediately.
//
//  2. Reactive handling: X-RateLimit-Remaining and X-RateLimit-Reset headers
//     are tracked. When the budget is exhausted, requests fail fast with a
//     [RateLimitError] instead of blocking a keystroke-driven UI until reset.
//
// # Error Handling
//
//   - API error responses: [APIError] with status code and message
//   - Rate limits (403 with zero remaining, 429, secondary limits): [RateLimitError]
//   - Transport and decoding failures: wrapped with the operation name
package github
