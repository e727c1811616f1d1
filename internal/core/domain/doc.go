// Package domain defines the core business entities for ghsuggest.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Suggestion: one selectable entry, either a repository or a user
//   - SuggestResult: the merged outcome of one repository + user search
//   - Status: the request lifecycle state shown by the UI
//   - AppSettings: search and API configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
package domain
