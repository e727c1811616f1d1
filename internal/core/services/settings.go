package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/custodia-labs/ghsuggest/internal/core/domain"
	"github.com/custodia-labs/ghsuggest/internal/core/ports/driven"
	"github.com/custodia-labs/ghsuggest/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyPerPage        = "search.per_page"
	KeyMinQueryLength = "search.min_query_length"
	KeyDebounceMS     = "search.debounce_ms"
	KeyLocale         = "search.locale"
	KeyAPIBaseURL     = "api.base_url"
	KeyAPITimeoutSecs = "api.timeout_seconds"
)

var settingKeys = []string{
	KeyPerPage,
	KeyMinQueryLength,
	KeyDebounceMS,
	KeyLocale,
	KeyAPIBaseURL,
	KeyAPITimeoutSecs,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or out of range values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Search: domain.SearchSettings{
			PerPage:        s.getIntInRange(KeyPerPage, defaults.Search.PerPage, 1, domain.MaxPerPage),
			MinQueryLength: s.getIntInRange(KeyMinQueryLength, defaults.Search.MinQueryLength, 1, 1<<16),
			Debounce:       s.getDebounce(defaults.Search.Debounce),
			Locale:         s.getLocale(defaults.Search.Locale),
		},
		API: domain.APISettings{
			BaseURL: s.getString(KeyAPIBaseURL, defaults.API.BaseURL),
			Timeout: time.Duration(s.getIntInRange(KeyAPITimeoutSecs, int(defaults.API.Timeout/time.Second), 1, 3600)) * time.Second,
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{KeyPerPage, settings.Search.PerPage},
		{KeyMinQueryLength, settings.Search.MinQueryLength},
		{KeyDebounceMS, int(settings.Search.Debounce / time.Millisecond)},
		{KeyLocale, settings.Search.Locale},
		{KeyAPIBaseURL, settings.API.BaseURL},
		{KeyAPITimeoutSecs, int(settings.API.Timeout / time.Second)},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set parses value for key, validates the resulting settings and persists
// the single key.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	var stored any
	switch key {
	case KeyPerPage:
		n, err := parseInt(key, value)
		if err != nil {
			return err
		}
		settings.Search.PerPage = n
		stored = n
	case KeyMinQueryLength:
		n, err := parseInt(key, value)
		if err != nil {
			return err
		}
		settings.Search.MinQueryLength = n
		stored = n
	case KeyDebounceMS:
		n, err := parseInt(key, value)
		if err != nil {
			return err
		}
		settings.Search.Debounce = time.Duration(n) * time.Millisecond
		stored = n
	case KeyLocale:
		if _, err := language.Parse(value); err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
		}
		settings.Search.Locale = value
		stored = value
	case KeyAPIBaseURL:
		if value != "" && !strings.HasSuffix(value, "/") {
			value += "/"
		}
		settings.API.BaseURL = value
		stored = value
	case KeyAPITimeoutSecs:
		n, err := parseInt(key, value)
		if err != nil {
			return err
		}
		settings.API.Timeout = time.Duration(n) * time.Second
		stored = n
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownSetting, key)
	}

	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the recognised config keys in display order.
func (s *SettingsService) Keys() []string {
	return append([]string(nil), settingKeys...)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns the config file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// Lookup returns the effective value of key formatted for display.
func (s *SettingsService) Lookup(key string) (string, error) {
	settings, err := s.Get()
	if err != nil {
		return "", err
	}
	switch key {
	case KeyPerPage:
		return strconv.Itoa(settings.Search.PerPage), nil
	case KeyMinQueryLength:
		return strconv.Itoa(settings.Search.MinQueryLength), nil
	case KeyDebounceMS:
		return strconv.FormatInt(settings.Search.Debounce.Milliseconds(), 10), nil
	case KeyLocale:
		return settings.Search.Locale, nil
	case KeyAPIBaseURL:
		return settings.API.BaseURL, nil
	case KeyAPITimeoutSecs:
		return strconv.Itoa(int(settings.API.Timeout / time.Second)), nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownSetting, key)
	}
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getIntInRange(key string, defaultVal, lo, hi int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	val := s.configStore.GetInt(key)
	if val < lo || val > hi {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getDebounce(defaultVal time.Duration) time.Duration {
	if _, exists := s.configStore.Get(KeyDebounceMS); !exists {
		return defaultVal
	}
	ms := s.configStore.GetInt(KeyDebounceMS)
	if ms < 0 {
		return defaultVal
	}
	return time.Duration(ms) * time.Millisecond
}

func (s *SettingsService) getLocale(defaultVal string) string {
	val := s.configStore.GetString(KeyLocale)
	if val == "" {
		return defaultVal
	}
	if _, err := language.Parse(val); err != nil {
		return defaultVal
	}
	return val
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", domain.ErrInvalidInput, key, value)
	}
	return n, nil
}
