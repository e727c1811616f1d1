package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change settings",
	Long: `Inspect and change the settings stored in config.toml.

Keys:
  search.per_page          page size requested from each endpoint
  search.min_query_length  characters required before searching
  search.debounce_ms       quiet period after the last keystroke
  search.locale            collation locale for sorting suggestions
  api.base_url             REST API root (GitHub Enterprise)
  api.timeout_seconds      per-request timeout`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Validate and persist one setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Current Settings")
	fmt.Fprintln(cmd.OutOrStdout(), "================")
	fmt.Fprintf(cmd.OutOrStdout(), "File: %s\n", settingsService.Path())
	fmt.Fprintln(cmd.OutOrStdout())

	for _, key := range settingsService.Keys() {
		value, err := settingsService.Lookup(key)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %-24s %s\n", key, value)
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	value, err := settingsService.Lookup(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	effective, err := settingsService.Lookup(key)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, effective)
	return nil
}
