package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clipforge/autoframe/internal/config"
)

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Job options utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample job options file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteSample(targetPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample job options to %s\n", targetPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "job.toml", "Destination for the options file")
	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [file]",
		Short: "Show effective options after defaults and clamping",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := config.Default()
			if len(args) == 1 {
				loaded, err := config.Load(args[0])
				if err != nil {
					return err
				}
				opts = loaded
			}

			cfg := opts.EngineConfig()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "source: %dx%d @ %.3g fps\n", cfg.FrameWidth, cfg.FrameHeight, cfg.FPS)
			fmt.Fprintf(out, "tracking_sensitivity: %d\n", cfg.Sensitivity)
			fmt.Fprintf(out, "camera_smoothing: %g\n", cfg.CameraSmoothing)
			fmt.Fprintf(out, "zoom_threshold: %g\n", cfg.ZoomThreshold)
			fmt.Fprintf(out, "zoom_level: %g\n", cfg.MaxZoom)
			return nil
		},
	}
}
