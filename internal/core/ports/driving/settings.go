package driving

import "github.com/custodia-labs/ghsuggest/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, defaults applied.
	Get() (*domain.AppSettings, error)

	// Save validates and persists application settings.
	Save(settings *domain.AppSettings) error

	// Set parses and persists a single setting by its config key.
	Set(key, value string) error

	// Lookup returns the effective value of a config key for display.
	Lookup(key string) (string, error)

	// Keys returns the recognised config keys in display order.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Path returns where the settings are persisted.
	Path() string
}
