package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"comboselect/internal/config"
	"comboselect/internal/eventbus"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := config.NewConfigServiceWithBus(eventbus.New(), configFlag)

		if _, err := os.Stat(svc.Path()); err == nil && !configInitForce {
			return fmt.Errorf("config file already exists: %s (use --force to overwrite)", svc.Path())
		}

		if err := svc.Save(config.DefaultConfig()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), svc.Path())
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := config.NewConfigServiceWithBus(nil, configFlag)
		fmt.Fprintln(cmd.OutOrStdout(), svc.Path())
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

// loadConfig reads the configuration. A file named with --config must
// exist; the default file may be missing.
func loadConfig(bus eventbus.EventBus) (*config.Config, error) {
	svc := config.NewConfigServiceWithBus(bus, configFlag)
	if configFlag == "" {
		return svc.Load()
	}

	cfg, err := svc.LoadFromPath(configFlag)
	if errors.Is(err, config.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	bus.Publish(eventbus.ConfigLoadedEvent{Path: configFlag})
	return cfg, nil
}
