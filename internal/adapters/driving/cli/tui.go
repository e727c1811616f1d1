package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/ghsuggest/internal/adapters/driving/tui"
	"github.com/custodia-labs/ghsuggest/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/ghsuggest/internal/core/ports/driven"
	"github.com/custodia-labs/ghsuggest/internal/logger"
)

// ErrNotATerminal is returned when the TUI is launched without a terminal.
var ErrNotATerminal = errors.New("the interactive UI needs a terminal; use 'ghsuggest search <query>' instead")

var tuiLogFile string

// isTerminal reports whether stdin and stdout are attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for ghsuggest.

Type at least the minimum number of characters to see matching repositories
and users. Edits to the config file are picked up while the UI is running.

Controls:
  ↑/ctrl+p, ↓/ctrl+n - Move the highlight
  Enter              - Select the highlighted suggestion
  ctrl+o             - Open the highlighted suggestion in a browser
  Esc                - Clear the query
  ctrl+c             - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiLogFile, "log-file", "",
		"verbose log destination (default <tmp>/ghsuggest.log)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	if err := requireSuggest(); err != nil {
		return err
	}
	if !isTerminal() {
		return ErrNotATerminal
	}

	if logger.IsVerbose() {
		path := tuiLogFile
		if path == "" {
			path = filepath.Join(os.TempDir(), "ghsuggest.log")
		}
		f, err := tea.LogToFile(path, "ghsuggest")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger.SetOutput(f)
		logger.SetTimestamps(true)
		defer logger.SetOutput(os.Stderr)
	}

	app, err := tui.NewApp(tui.NewPorts(suggestService, urlOpener))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	app.WithContext(ctx)

	p := app.NewProgram()

	if configWatcher != nil && settingsService != nil {
		go watchConfig(ctx, configWatcher, p.Send)
	}

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("TUI error: %w", err)
	}
	if err := app.Err(); err != nil {
		logger.Warn("TUI exited after error: %v", err)
	}
	return nil
}

// watchConfig forwards config changes to the program until ctx is done.
// A watcher that stops with an error is reported to the UI.
func watchConfig(ctx context.Context, w driven.ConfigWatcher, send func(tea.Msg)) {
	if err := w.Watch(ctx, reloadSettings(send)); err != nil {
		send(messages.ErrorOccurred{Err: fmt.Errorf("watch config: %w", err)})
	}
}

// reloadSettings returns a config change callback that re-reads the
// settings and hands them to the running program.
func reloadSettings(send func(tea.Msg)) func() {
	return func() {
		settings, err := settingsService.Get()
		if err != nil {
			send(messages.SettingsChanged{Err: err})
			return
		}
		logger.Debug("config reloaded: %+v", settings.Search)
		send(messages.SettingsChanged{Settings: settings.Search})
	}
}
