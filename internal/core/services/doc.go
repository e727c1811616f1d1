// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// SuggestService turns a query into the merged, collated suggestion list.
// SettingsService maps config keys onto domain.AppSettings.
package services
