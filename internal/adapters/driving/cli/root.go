// Package cli implements the ghsuggest command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ghsuggest/internal/core/ports/driven"
	"github.com/custodia-labs/ghsuggest/internal/core/ports/driving"
	"github.com/custodia-labs/ghsuggest/internal/logger"
)

// skipServices marks commands that run without the service graph.
const skipServices = "ghsuggest/skip-services"

// Services holds the ports the commands run against.
type Services struct {
	Suggest  driving.SuggestService
	Settings driving.SettingsService

	// Watcher reports config file edits. Optional.
	Watcher driven.ConfigWatcher

	// Opener opens suggestion links from the TUI. Optional.
	Opener driven.URLOpener
}

// ServicesFactory builds the service graph from a config directory.
// An empty directory selects the default location.
type ServicesFactory func(configDir string) (*Services, error)

var (
	version = "dev"

	verbose   bool
	configDir string

	servicesFactory ServicesFactory

	suggestService  driving.SuggestService
	settingsService driving.SettingsService
	configWatcher   driven.ConfigWatcher
	urlOpener       driven.URLOpener
)

var rootCmd = &cobra.Command{
	Use:   "ghsuggest",
	Short: "Search-as-you-type suggestions for GitHub users and repositories",
	Long: `ghsuggest completes partial GitHub repository and user names.

Run without arguments to open the interactive search box. Suggestions from
the repository and user search endpoints are merged and sorted by name.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: prepare,
	RunE:              runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.ghsuggest)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServicesFactory sets how the service graph is built once flags are parsed.
func SetServicesFactory(f ServicesFactory) {
	servicesFactory = f
}

// SetServices installs an already built service graph.
func SetServices(s *Services) {
	if s == nil {
		suggestService, settingsService, configWatcher, urlOpener = nil, nil, nil, nil
		return
	}
	suggestService = s.Suggest
	settingsService = s.Settings
	configWatcher = s.Watcher
	urlOpener = s.Opener
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func prepare(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if cmd.Annotations[skipServices] == "true" || suggestService != nil || servicesFactory == nil {
		return nil
	}

	services, err := servicesFactory(configDir)
	if err != nil {
		return fmt.Errorf("initialise services: %w", err)
	}
	SetServices(services)
	return nil
}

func requireSuggest() error {
	if suggestService == nil {
		return errors.New("suggest service not configured")
	}
	return nil
}

func requireSettings() error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	return nil
}
