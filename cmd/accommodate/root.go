package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/accommodate/internal/config"
)

type rootFlags struct {
	configPath   string
	settingsPath string
	verbose      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "accommodate",
		Short:         "Accommodate applies accessibility accommodations to HTML documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", config.DefaultPath(), "Path to configuration file")
	cmd.PersistentFlags().StringVar(&flags.settingsPath, "settings", "", "Path to the persisted settings file (overrides config)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newApplyCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newSetCmd(flags))
	cmd.AddCommand(newProfileCmd(flags))
	cmd.AddCommand(newResetCmd(flags))
	cmd.AddCommand(newPanelCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
