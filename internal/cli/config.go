package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"rackbrowser/internal/config"
	"rackbrowser/internal/eventbus"
)

func newConfigCommand(opts *options) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := loadConfig(opts, nil)
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := loadConfig(opts, nil)
			if err != nil {
				return err
			}
			if err := svc.Save(cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", svc.Path())
			return nil
		},
	})

	return configCmd
}

// loadConfig reads the configuration with flag overrides applied
func loadConfig(opts *options, bus eventbus.EventBus) (config.ConfigService, *config.Config, error) {
	svc := config.NewConfigServiceWithBus(bus, opts.configPath)
	cfg, err := svc.Load()
	if err != nil {
		return nil, nil, err
	}
	if opts.pluginsDir != "" {
		cfg.PluginsDir = opts.pluginsDir
	}
	if opts.settingsPath != "" {
		cfg.SettingsPath = opts.settingsPath
	}
	return svc, cfg, nil
}
