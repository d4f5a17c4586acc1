package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	backend    string
	storePath  string
	seedPath   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "linkpage",
		Short:         "linkpage keeps a personal link page: profile, links and theme",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, flags, &showOptions{})
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a config file (default: ./config.yaml or the user config directory)")
	cmd.PersistentFlags().StringVar(&flags.backend, "backend", "", "Storage backend: memory, file or sqlite")
	cmd.PersistentFlags().StringVar(&flags.storePath, "store", "", "Path of the settings store")
	cmd.PersistentFlags().StringVar(&flags.seedPath, "seed", "", "YAML file with the initial profile and links")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newEditCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newThemesCmd())
	cmd.AddCommand(newCSSCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
