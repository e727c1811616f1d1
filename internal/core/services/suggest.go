package services

import (
	"context"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/custodia-labs/ghsuggest/internal/core/domain"
	"github.com/custodia-labs/ghsuggest/internal/core/ports/driven"
	"github.com/custodia-labs/ghsuggest/internal/core/ports/driving"
	"github.com/custodia-labs/ghsuggest/internal/logger"
)

// Ensure SuggestService implements the interface.
var _ driving.SuggestService = (*SuggestService)(nil)

// SuggestService searches repositories and users for a query and merges
// the two result sets into one sorted suggestion list.
type SuggestService struct {
	api driven.SearchAPI

	mu       sync.RWMutex
	settings domain.SearchSettings

	newBatchID func() string
}

// NewSuggestService creates a suggest service backed by api.
// Invalid settings are replaced by the defaults.
func NewSuggestService(api driven.SearchAPI, settings domain.SearchSettings) *SuggestService {
	if err := settings.Validate(); err != nil {
		logger.Warn("Invalid search settings, using defaults: %v", err)
		settings = domain.DefaultAppSettings().Search
	}
	return &SuggestService{
		api:        api,
		settings:   settings,
		newBatchID: uuid.NewString,
	}
}

// Settings returns the search settings currently in effect.
func (s *SuggestService) Settings() domain.SearchSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Configure replaces the search settings used by subsequent calls.
// Calls already in flight keep the settings they started with.
func (s *SuggestService) Configure(settings domain.SearchSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	logger.Debug("Search settings updated: per_page=%d min=%d debounce=%s locale=%s",
		settings.PerPage, settings.MinQueryLength, settings.Debounce, settings.Locale)
	return nil
}

// Suggest runs the repository and user searches concurrently and merges
// them. One failing endpoint still yields the other's suggestions, with the
// failure recorded on the result. Both failing returns
// domain.ErrBothSearchesFailed.
func (s *SuggestService) Suggest(ctx context.Context, query string) (domain.SuggestResult, error) {
	settings := s.Settings()
	result := domain.SuggestResult{
		BatchID: s.newBatchID(),
		Query:   query,
	}

	logger.Section("Suggest")
	logger.Debug("[%s] Query: %q", result.BatchID, query)

	if utf8.RuneCountInString(query) < settings.MinQueryLength {
		logger.Debug("[%s] Query shorter than %d characters, skipping", result.BatchID, settings.MinQueryLength)
		return result, domain.ErrQueryTooShort
	}
	if s.api == nil {
		return result, domain.ErrSearchUnavailable
	}

	start := time.Now()
	var (
		wg    sync.WaitGroup
		repos []domain.Suggestion
		users []domain.Suggestion
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		var err error
		repos, err = s.api.SearchRepositories(ctx, query, settings.PerPage)
		if err != nil {
			result.RepositoryErr = fmt.Errorf("search %s: %w", domain.EndpointRepositories, err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		users, err = s.api.SearchUsers(ctx, query, settings.PerPage)
		if err != nil {
			result.UserErr = fmt.Errorf("search %s: %w", domain.EndpointUsers, err)
		}
	}()
	wg.Wait()

	logger.Debug("[%s] %d repositories, %d users in %s",
		result.BatchID, len(repos), len(users), time.Since(start).Round(time.Millisecond))

	if result.RepositoryErr != nil && result.UserErr != nil {
		logger.Warn("[%s] Both searches failed: %v", result.BatchID, result.Err())
		return result, fmt.Errorf("%w: %w", domain.ErrBothSearchesFailed, result.Err())
	}
	if result.Partial() {
		logger.Warn("[%s] Partial results: %v", result.BatchID, result.Err())
	}

	result.Suggestions = MergeSuggestions(repos, users, settings.Locale)
	return result, nil
}
