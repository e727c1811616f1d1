// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - SearchAPI: repository and user search against the GitHub REST API
//   - ConfigStore: application configuration
//   - ConfigWatcher: optional change notifications for a ConfigStore
//   - URLOpener: opens suggestion pages in the user's browser
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
