package main

import (
	"github.com/spf13/cobra"

	"github.com/clipforge/autoframe/internal/log"
)

func newRootCommand() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:           "autoframe",
		Short:         "Active-speaker reframing for landscape video",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Init(logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newReplayCommand())
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
