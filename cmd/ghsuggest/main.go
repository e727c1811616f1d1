// Command ghsuggest is a search-as-you-type client for GitHub users and
// repositories.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/ghsuggest/internal/adapters/driven/browser"
	"github.com/custodia-labs/ghsuggest/internal/adapters/driven/config/file"
	"github.com/custodia-labs/ghsuggest/internal/adapters/driven/github"
	"github.com/custodia-labs/ghsuggest/internal/adapters/driving/cli"
	"github.com/custodia-labs/ghsuggest/internal/core/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetServicesFactory(buildServices)

	if err := cli.Execute(ctx); err != nil {
		os.Exit(1)
	}
}

func buildServices(configDir string) (*cli.Services, error) {
	if configDir == "" {
		dir, err := file.DefaultConfigDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}

	settingsService := services.NewSettingsService(store)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	client, err := github.NewClientFromSettings(settings.API)
	if err != nil {
		return nil, fmt.Errorf("create search client: %w", err)
	}

	return &cli.Services{
		Suggest:  services.NewSuggestService(client, settings.Search),
		Settings: settingsService,
		Watcher:  store,
		Opener:   browser.NewOpener(),
	}, nil
}
