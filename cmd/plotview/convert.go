package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"plotview/internal/config"
	"plotview/internal/mapgen"
	"plotview/internal/scene"
)

func newConvertCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Re-encode a plot file between the json and binary formats",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := convertScene(args[0], args[1], scene.Format(from), scene.Format(to)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s)\n", args[1], to)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", string(scene.FormatJSON), "input format (json or binary)")
	cmd.Flags().StringVar(&to, "to", string(scene.FormatBinary), "output format (json or binary)")
	return cmd
}

// convertScene decodes in with one format and writes it to out with another.
func convertScene(in, out string, from, to scene.Format) error {
	in, err := homedir.Expand(in)
	if err != nil {
		return err
	}
	out, err = homedir.Expand(out)
	if err != nil {
		return err
	}
	src, err := scene.NewLoader(from, 0)
	if err != nil {
		return err
	}
	dst, err := scene.NewLoader(to, 0)
	if err != nil {
		return err
	}
	s, err := src.Load(in)
	if err != nil {
		return fmt.Errorf("read %s: %w", in, err)
	}
	return dst.Save(out, s)
}

func newConfigCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := homedir.Expand(*configPath)
			if err != nil {
				return err
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
}

func newSampleCmd() *cobra.Command {
	opts := mapgen.DefaultTerrainOptions()
	var format string
	cmd := &cobra.Command{
		Use:   "sample OUT",
		Short: "Write a generated wireframe terrain plot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := homedir.Expand(args[0])
			if err != nil {
				return err
			}
			l, err := scene.NewLoader(scene.Format(format), 0)
			if err != nil {
				return err
			}
			s := mapgen.Terrain(opts)
			if err := l.Save(out, s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %s points, %s lines\n",
				out, humanize.Comma(int64(len(s.Points))), humanize.Comma(int64(len(s.Lines))))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&format, "format", string(scene.FormatJSON), "output format (json or binary)")
	f.IntVar(&opts.Width, "width", opts.Width, "vertices along X")
	f.IntVar(&opts.Depth, "depth", opts.Depth, "vertices along Z")
	f.Float32Var(&opts.HeightScale, "height", opts.HeightScale, "maximum terrain height")
	f.Int64Var(&opts.Seed, "seed", opts.Seed, "noise seed")
	return cmd
}
