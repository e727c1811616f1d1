// Package mcp provides an MCP (Model Context Protocol) server adapter for ghsuggest.
// It lets AI assistants ask for the same merged repository and user
// suggestions the terminal UI shows.
package mcp

import "errors"

// ErrMissingSuggestService is returned when the suggest service is not provided.
var ErrMissingSuggestService = errors.New("mcp: suggest service is required")

// ErrEmptyQuery is returned when a tool or resource is invoked without a query.
var ErrEmptyQuery = errors.New("mcp: query is required")
