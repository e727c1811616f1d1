package mcp

import (
	"context"

	"github.com/custodia-labs/ghsuggest/internal/core/domain"
)

// mockSuggestService is a mock implementation of driving.SuggestService.
type mockSuggestService struct {
	result   domain.SuggestResult
	err      error
	settings domain.SearchSettings
	queries  []string
}

func (m *mockSuggestService) Suggest(_ context.Context, query string) (domain.SuggestResult, error) {
	m.queries = append(m.queries, query)
	if m.err != nil {
		return domain.SuggestResult{}, m.err
	}
	result := m.result
	result.Query = query
	return result, nil
}

func (m *mockSuggestService) Settings() domain.SearchSettings {
	return m.settings
}

func (m *mockSuggestService) Configure(settings domain.SearchSettings) error {
	m.settings = settings
	return nil
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	path string
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	s := domain.DefaultAppSettings()
	return &s, nil
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error { return nil }

func (m *mockSettingsService) Set(_, _ string) error { return nil }

func (m *mockSettingsService) Lookup(_ string) (string, error) { return "", nil }

func (m *mockSettingsService) Keys() []string { return nil }

func (m *mockSettingsService) GetDefaults() domain.AppSettings { return domain.DefaultAppSettings() }

func (m *mockSettingsService) Path() string { return m.path }

func sampleResult() domain.SuggestResult {
	return domain.SuggestResult{
		BatchID: "batch-1",
		Suggestions: []domain.Suggestion{
			domain.NewUserSuggestion(2, "golang", "https://avatars/golang", "Organization", "https://github.com/golang"),
			domain.NewRepositorySuggestion(1, "golang/go", "https://avatars/golang",
				"The Go programming language", 120000, "https://github.com/golang/go"),
		},
	}
}
