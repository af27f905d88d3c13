// Package cli wires the command line: the interactive browser by default
// plus a few non-interactive commands over the same catalog and favorites.
package cli

import (
	"github.com/spf13/cobra"

	"rackbrowser/internal/logging"
)

// options are the persistent flags shared by every command
type options struct {
	configPath   string
	pluginsDir   string
	settingsPath string
	builtin      bool
	logLevel     string
}

// NewRootCommand builds the rackbrowser command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "rackbrowser",
		Short: "Browse, search and place modular synth modules",
		Long: `rackbrowser lists the modules of every installed plugin, filtered by
manufacturer, tag or free-text search, and places the chosen module on a
rack. Favorite modules are kept at the top of the list.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// The TUI switches to file logging once it starts
			logging.Console(opts.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/rackbrowser/config.toml)")
	flags.StringVar(&opts.pluginsDir, "plugins", "", "directory of plugin manifests (overrides config)")
	flags.StringVar(&opts.settingsPath, "settings", "", "settings file holding favorites (overrides config)")
	flags.BoolVar(&opts.builtin, "builtin", false, "use the built-in catalog instead of the plugins directory")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level for non-interactive commands")

	rootCmd.AddCommand(
		newListCommand(opts),
		newTagsCommand(opts),
		newManufacturersCommand(opts),
		newFavoritesCommand(opts),
		newConfigCommand(opts),
	)
	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}
