package main

import (
	"os"

	"github.com/spf13/cobra"
)

// configDirEnv points config.New at a directory holding config.yaml.
const configDirEnv = "REELHOUSE_CONFIG_DIR"

func newRootCommand() *cobra.Command {
	var configDir string

	rootCmd := &cobra.Command{
		Use:           "reelhouse",
		Short:         "Reelhouse media browsing API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configDir != "" {
				return os.Setenv(configDirEnv, configDir)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configDir, "config-dir", "c", "", "Directory containing config.yaml")

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
