package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"

	"plotview/internal/camera"
	"plotview/internal/config"
	"plotview/internal/debug"
	"plotview/internal/geometry"
	"plotview/internal/graphics"
	"plotview/internal/logger"
	"plotview/internal/render"
	"plotview/internal/scene"
	"plotview/internal/watch"
)

// runViewer loads the plot, opens the window and renders until the window is
// closed or the process is interrupted. Any returned error is fatal; once the
// logger is configured, errors are logged through it before returning.
func runViewer(ctx context.Context, configPath, file string) error {
	configPath, err := homedir.Expand(configPath)
	if err != nil {
		return err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log, closer, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	if err := view(ctx, cfg, log, file); err != nil {
		log.Error().Err(err).Msg("plotview failed")
		return loggedError{err}
	}
	return nil
}

// loggedError marks an error that already reached the configured logger.
type loggedError struct{ error }

func (e loggedError) Unwrap() error { return e.error }

// view runs the viewer with a configured logger.
func view(ctx context.Context, cfg config.Config, log zerolog.Logger, file string) error {
	path, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	loader, err := scene.NewLoader(cfg.Format, cfg.MaxSceneSize)
	if err != nil {
		return err
	}
	initial, err := loader.Load(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	log.Info().
		Str("path", path).
		Str("format", string(cfg.Format)).
		Int("points", len(initial.Points)).
		Int("lines", len(initial.Lines)).
		Msg("scene loaded")

	src, err := watch.New(cfg.Watch, path, cfg.QueueSize, log)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	defer src.Close()

	win, err := graphics.Open(graphics.Options{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	cam := camera.NewOrbit()
	cam.Fit(geometry.BoundsOf(initial))

	opts := render.Options{
		FPS:        cfg.FPS,
		ClearColor: cfg.ClearColor,
		LinePen:    render.Pen{Color: cfg.LineColor, Width: cfg.LineWidth},
		PointPen:   render.Pen{Color: cfg.PointColor, Width: cfg.PointSize},
	}
	if cfg.Grid {
		g := geometry.BuildGrid(geometry.DefaultGridExtent, geometry.DefaultGridMinorStep, geometry.DefaultGridMajorStep)
		minor := cfg.GridColor
		minor[3] /= 2
		opts.Grid = &g
		opts.GridMinor = render.Pen{Color: minor, Width: 1}
		opts.GridMajor = render.Pen{Color: cfg.GridColor, Width: 1}
	}
	if cfg.ShowStats {
		opts.Stats = debug.New()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := render.NewLoop(initial, win, cam, src, loader, opts, log)
	if err := loop.Run(ctx); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
