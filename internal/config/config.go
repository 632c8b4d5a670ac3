package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/c2h5oh/datasize"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"plotview/internal/render"
	"plotview/internal/scene"
	"plotview/internal/watch"
)

// ConfigPath is the default config file, relative to the working directory.
const ConfigPath = "config/plotview.yaml"

// EnvPrefix prefixes environment overrides, e.g. PLOTVIEW_FPS or
// PLOTVIEW_WINDOW_WIDTH.
const EnvPrefix = "PLOTVIEW"

// Window holds the initial window geometry.
type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Log configures the logger package.
type Log struct {
	Level string `yaml:"level"`
	// Format is "console" or "json".
	Format string `yaml:"format"`
	// File, when not empty, also receives every log line.
	File string `yaml:"file"`
}

// Config holds viewer settings. Colors are written "#rrggbb" or "#rrggbbaa"
// and must be quoted in YAML.
type Config struct {
	Window Window  `yaml:"window"`
	FPS    float64 `yaml:"fps"`

	Format       scene.Format      `yaml:"format"`
	Watch        watch.Mode        `yaml:"watch"`
	QueueSize    int               `yaml:"queue_size" split_words:"true"`
	MaxSceneSize datasize.ByteSize `yaml:"max_scene_size" split_words:"true"`

	LineWidth  float32      `yaml:"line_width" split_words:"true"`
	PointSize  float32      `yaml:"point_size" split_words:"true"`
	LineColor  render.Color `yaml:"line_color" split_words:"true"`
	PointColor render.Color `yaml:"point_color" split_words:"true"`
	ClearColor render.Color `yaml:"clear_color" split_words:"true"`

	Grid      bool         `yaml:"grid"`
	GridColor render.Color `yaml:"grid_color" split_words:"true"`
	ShowStats bool         `yaml:"show_stats" split_words:"true"`

	Log Log `yaml:"log"`
}

// Default returns the built-in settings: a 1024x1024 "ASAP" window at 60 fps,
// JSON scenes watched through file-system notifications, white 5px lines and
// orange points on a transparent background.
func Default() Config {
	return Config{
		Window:       Window{Title: "ASAP", Width: 1024, Height: 1024},
		FPS:          render.DefaultFPS,
		Format:       scene.FormatJSON,
		Watch:        watch.ModeNotify,
		QueueSize:    watch.DefaultQueueSize,
		MaxSceneSize: scene.DefaultMaxSize,
		LineWidth:    5,
		PointSize:    6,
		LineColor:    render.White,
		PointColor:   render.RGBA(255, 140, 26, 255),
		ClearColor:   render.Transparent,
		Grid:         false,
		GridColor:    render.RGBA(128, 128, 128, 128),
		ShowStats:    false,
		Log:          Log{Level: "info", Format: "console", File: "logs/plotview.txt"},
	}
}

// Load starts from Default, overlays the YAML file at path if it exists and
// then applies PLOTVIEW_* environment variables. A missing file is not an
// error; an unreadable or invalid one is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("environment: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the viewer cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %v", c.FPS))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.LineWidth <= 0 || c.PointSize <= 0 {
		errs = append(errs, fmt.Errorf("line_width and point_size must be positive"))
	}
	if _, err := scene.CodecFor(c.Format); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Save writes c as YAML to path, creating the directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
