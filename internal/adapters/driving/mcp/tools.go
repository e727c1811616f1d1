package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/ghsuggest/internal/core/domain"
)

// SuggestInput is the input schema for the suggest tool.
type SuggestInput struct {
	Query string `json:"query" jsonschema:"partial repository or user name to complete"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of suggestions to return (0 returns all)"`
}

// SuggestOutput is the output schema for the suggest tool.
type SuggestOutput struct {
	Query       string             `json:"query"`
	BatchID     string             `json:"batch_id"`
	Suggestions []SuggestionOutput `json:"suggestions"`
	Count       int                `json:"count"`
	Warnings    []string           `json:"warnings,omitempty"`
}

// SuggestionOutput represents a single suggestion.
type SuggestionOutput struct {
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	Description string `json:"description,omitempty"`
	Stars       int    `json:"stars,omitempty"`
	AccountType string `json:"account_type,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "suggest",
		Description: "Suggest GitHub repositories and users matching a partial name",
	}, s.handleSuggest)
}

// handleSuggest handles the suggest tool invocation.
func (s *Server) handleSuggest(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SuggestInput,
) (*mcp.CallToolResult, SuggestOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return nil, SuggestOutput{}, ErrEmptyQuery
	}

	result, err := s.ports.Suggest.Suggest(ctx, input.Query)
	if err != nil {
		return nil, SuggestOutput{}, err
	}

	return nil, toOutput(result, input.Limit), nil
}

func toOutput(result domain.SuggestResult, limit int) SuggestOutput {
	items := result.Suggestions
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	output := SuggestOutput{
		Query:       result.Query,
		BatchID:     result.BatchID,
		Suggestions: make([]SuggestionOutput, len(items)),
		Count:       len(items),
	}
	for i, sg := range items {
		output.Suggestions[i] = SuggestionOutput{
			Kind:        sg.Kind.String(),
			Name:        sg.Name(),
			URL:         sg.HTMLURL,
			AvatarURL:   sg.AvatarURL,
			Description: sg.Description,
			Stars:       sg.Stars,
			AccountType: sg.AccountType,
		}
	}

	if result.RepositoryErr != nil {
		output.Warnings = append(output.Warnings, "repositories: "+result.RepositoryErr.Error())
	}
	if result.UserErr != nil {
		output.Warnings = append(output.Warnings, "users: "+result.UserErr.Error())
	}
	return output
}
