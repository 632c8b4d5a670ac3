package main

import (
	"errors"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"plotview/internal/config"
	"plotview/internal/env"
)

func init() {
	// raylib and GL calls must stay on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var logged loggedError
		if !errors.As(err, &logged) {
			// Failed before the configured logger existed.
			zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().
				Error().Err(err).Msg("plotview failed")
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:   "plotview FILE",
		Short: "Render a 3D point/line plot and redraw it whenever the file changes",
		Args:  cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.Load(".env")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runViewer(cmd.Context(), configPath, args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", config.ConfigPath, "path to the YAML config file")
	root.AddCommand(newConvertCmd(), newConfigCmd(&configPath), newSampleCmd())
	return root
}
