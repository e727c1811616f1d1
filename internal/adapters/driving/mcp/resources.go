package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const uriScheme = "ghsuggest://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Search settings currently in effect",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "suggestions/{query}",
		Name:        "suggestions",
		Description: "Merged repository and user suggestions for a query",
		MIMEType:    "application/json",
	}, s.handleSuggestionsResource)
}

// handleSettingsResource returns the effective configuration as key/value pairs.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type settingsInfo struct {
		PerPage        int    `json:"per_page"`
		MinQueryLength int    `json:"min_query_length"`
		DebounceMS     int64  `json:"debounce_ms"`
		Locale         string `json:"locale"`
		ConfigPath     string `json:"config_path,omitempty"`
	}

	current := s.ports.Suggest.Settings()
	info := settingsInfo{
		PerPage:        current.PerPage,
		MinQueryLength: current.MinQueryLength,
		DebounceMS:     current.Debounce.Milliseconds(),
		Locale:         current.Locale,
	}
	if s.ports.Settings != nil {
		info.ConfigPath = s.ports.Settings.Path()
	}

	return jsonResult(req.Params.URI, info)
}

// handleSuggestionsResource runs a suggestion query named by the URI.
func (s *Server) handleSuggestionsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	query := extractQuery(req.Params.URI)
	if query == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	result, err := s.ports.Suggest.Suggest(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("suggesting %q: %w", query, err)
	}

	return jsonResult(req.Params.URI, toOutput(result, 0))
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractQuery extracts the unescaped query from ghsuggest://suggestions/{query}.
func extractQuery(uri string) string {
	const prefix = uriScheme + "suggestions/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	query, err := url.PathUnescape(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return ""
	}
	return query
}
