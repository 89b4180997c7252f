package cli

import (
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/holonoms/filesize/internal/config"
	"github.com/spf13/cobra"
)

// preference describes one settable key and the values it accepts.
type preference struct {
	Key         string
	Description string
	Default     string
	Values      []string
}

var preferences = []preference{
	{
		Key:         config.KeyOutputJSON,
		Description: "Print results as JSON lines",
		Default:     "false",
		Values:      []string{"true", "false"},
	},
	{
		Key:         config.KeyRespectIgnore,
		Description: "Skip files matched by .filesizeignore or .gitignore when sizing directories",
		Default:     "true",
		Values:      []string{"true", "false"},
	},
}

// MARK: Sub-commands

// newConfigCmd creates the config command and its subcommands
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage preferences",
		Long: `Manage preferences. output.json is stored in the global config file,
stat.respect_ignore in the .filesize file of the current directory.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all preferences with their current values",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runConfigList(cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:               "get <key>",
			Short:             "Print a preference",
			Args:              cobra.ExactArgs(1),
			ValidArgsFunction: completePreference,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runConfigGet(cmd.OutOrStdout(), args[0])
			},
		},
		&cobra.Command{
			Use:               "set <key> <value>",
			Short:             "Store a preference",
			Args:              cobra.ExactArgs(2),
			ValidArgsFunction: completePreference,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runConfigSet(cmd.OutOrStdout(), args[0], args[1])
			},
		},
		&cobra.Command{
			Use:               "unset <key>",
			Short:             "Remove a stored preference",
			Args:              cobra.ExactArgs(1),
			ValidArgsFunction: completePreference,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runConfigUnset(cmd.OutOrStdout(), args[0])
			},
		},
	)

	return cmd
}

func runConfigList(w io.Writer) error {
	cfg, err := config.New(".")
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}

	for _, pref := range preferences {
		fmt.Fprintf(w, "%s (%s)\n", pref.Key, scope(pref.Key))
		fmt.Fprintf(w, "    %s\n", pref.Description)
		if cfg.Has(pref.Key) {
			fmt.Fprintf(w, "    Current: %s\n", cfg.Get(pref.Key))
		} else {
			fmt.Fprintf(w, "    Current: %s (default)\n", pref.Default)
		}
	}

	// Keys stored in the files that no preference describes.
	var unknown []string
	for _, key := range cfg.Keys() {
		if lookupPreference(key) == nil {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		fmt.Fprintf(w, "\nUnrecognized keys: %s\n", strings.Join(unknown, ", "))
	}

	return nil
}

func runConfigGet(w io.Writer, key string) error {
	pref, cfg, err := loadPreference(key)
	if err != nil {
		return err
	}

	if !cfg.Has(key) {
		fmt.Fprintf(w, "%s = %s (default)\n", key, pref.Default)
		return nil
	}

	fmt.Fprintf(w, "%s = %s\n", key, cfg.Get(key))
	return nil
}

func runConfigSet(w io.Writer, key, value string) error {
	pref, cfg, err := loadPreference(key)
	if err != nil {
		return err
	}

	if !slices.Contains(pref.Values, value) {
		return fmt.Errorf("invalid value for %s: %q, expected one of %s",
			key, value, strings.Join(pref.Values, ", "))
	}

	if err := cfg.Set(key, value); err != nil {
		return fmt.Errorf("unable to set config: %w", err)
	}

	fmt.Fprintf(w, "Set %s = %s\n", key, value)
	return nil
}

func runConfigUnset(w io.Writer, key string) error {
	_, cfg, err := loadPreference(key)
	if err != nil {
		return err
	}

	if err := cfg.Delete(key); err != nil {
		return fmt.Errorf("unable to unset config: %w", err)
	}

	fmt.Fprintf(w, "Unset %s\n", key)
	return nil
}

// MARK: Helpers

// loadPreference resolves key to its registry entry and loads the config
// files that may hold it.
func loadPreference(key string) (*preference, *config.Config, error) {
	pref := lookupPreference(key)
	if pref == nil {
		return nil, nil, fmt.Errorf(
			"unknown configuration option: %s\n\nRun 'filesize config list' to see available options", key)
	}

	cfg, err := config.New(".")
	if err != nil {
		return nil, nil, fmt.Errorf("unable to load config: %w", err)
	}
	return pref, cfg, nil
}

func lookupPreference(key string) *preference {
	for i := range preferences {
		if preferences[i].Key == key {
			return &preferences[i]
		}
	}
	return nil
}

func scope(key string) string {
	if config.IsGlobalKey(key) {
		return "global"
	}
	return "project"
}

// completePreference completes the key, then (for set) the key's values.
func completePreference(
	cmd *cobra.Command,
	args []string,
	_ string,
) ([]string, cobra.ShellCompDirective) {
	switch {
	case len(args) == 0:
		keys := make([]string, 0, len(preferences))
		for _, pref := range preferences {
			keys = append(keys, pref.Key)
		}
		return keys, cobra.ShellCompDirectiveNoFileComp
	case len(args) == 1 && cmd.Name() == "set":
		if pref := lookupPreference(args[0]); pref != nil {
			return pref.Values, cobra.ShellCompDirectiveNoFileComp
		}
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}
