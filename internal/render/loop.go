package render

import (
	"context"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"plotview/internal/debug"
	"plotview/internal/geometry"
	"plotview/internal/input"
	"plotview/internal/scene"
	"plotview/internal/watch"
)

// DefaultFPS is the target frame rate when Options.FPS is not set.
const DefaultFPS = 60

// State is the loop's lifecycle state.
type State int

const (
	Running State = iota
	Closing
)

func (s State) String() string {
	if s == Closing {
		return "closing"
	}
	return "running"
}

// Options holds the loop's visual constants and pacing.
type Options struct {
	FPS        float64
	ClearColor Color
	LinePen    Pen
	PointPen   Pen

	// Grid, when set, is drawn under the scene with GridMinor and GridMajor.
	Grid      *geometry.Grid
	GridMinor Pen
	GridMajor Pen

	// Stats, when set, is updated every frame and drawn if the window
	// implements Overlay.
	Stats *debug.Stats

	Clock Clock
}

// Loop runs the frame cycle: input, file changes, camera, draw, pacing,
// present. All scene state is owned by the goroutine calling Step or Run.
type Loop struct {
	win    Window
	cam    Camera
	src    watch.Source
	loader Loader
	clock  Clock
	log    zerolog.Logger
	opts   Options
	period time.Duration

	state     State
	current   *Frame
	prevStart time.Time

	frames   int
	reloads  int
	failures int
	// streak counts consecutive failed reloads.
	streak int
}

// NewLoop returns a loop that starts out rendering initial.
func NewLoop(initial *scene.Scene, win Window, cam Camera, src watch.Source, loader Loader, opts Options, log zerolog.Logger) *Loop {
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	return &Loop{
		win:     win,
		cam:     cam,
		src:     src,
		loader:  loader,
		clock:   clock,
		log:     log.With().Str("component", "render").Logger(),
		opts:    opts,
		period:  time.Duration(float64(time.Second) / opts.FPS),
		current: NewFrame(initial),
	}
}

// Run steps until the window is closed or ctx is done. Cancellation is only
// checked between frames. A non-nil error means the graphics layer failed.
func (l *Loop) Run(ctx context.Context) error {
	l.log.Info().Dur("frame_period", l.period).Msg("render loop started")
	for {
		select {
		case <-ctx.Done():
			l.state = Closing
			l.log.Info().Msg("render loop cancelled")
			return nil
		default:
		}
		running, err := l.Step()
		if err != nil {
			return err
		}
		if !running {
			l.log.Info().Int("frames", l.frames).Msg("render loop closed")
			return nil
		}
	}
}

// Step runs one frame and reports whether the loop is still running.
func (l *Loop) Step() (bool, error) {
	if l.state == Closing {
		return false, nil
	}
	start := l.clock.Now()

	for _, ev := range l.win.PollEvents() {
		if _, ok := ev.(input.Close); ok {
			l.state = Closing
			return false, nil
		}
		l.cam.HandleInput(ev)
	}

	if path, ok := l.src.TryRecv(); ok {
		l.reload(path)
	}

	var dt time.Duration
	if !l.prevStart.IsZero() {
		dt = start.Sub(l.prevStart)
	}
	l.prevStart = start
	transform := l.cam.Update(dt, l.win.Viewport())

	if err := l.draw(transform, dt); err != nil {
		return false, err
	}

	if elapsed := l.clock.Now().Sub(start); elapsed < l.period {
		l.clock.Sleep(l.period - elapsed)
	}

	if err := l.win.Present(); err != nil {
		return false, fmt.Errorf("present frame: %w", err)
	}
	l.frames++
	return true, nil
}

// reload swaps in a new Frame only when path decodes; otherwise the current
// Frame stays untouched. Sources that implement watch.Acknowledger are told
// about each successful load.
func (l *Loop) reload(path string) {
	s, err := l.loader.Load(path)
	if err != nil {
		l.failures++
		l.streak++
		ev := l.log.Warn()
		if l.streak > 1 {
			ev = l.log.Debug()
		}
		ev.Err(err).Str("path", path).Int("attempt", l.streak).Msg("reload failed, keeping previous scene")
		return
	}
	l.current = NewFrame(s)
	l.reloads++
	l.streak = 0
	if a, ok := l.src.(watch.Acknowledger); ok {
		a.Ack(path)
	}
	l.log.Info().
		Str("path", path).
		Int("points", len(s.Points)).
		Int("lines", len(s.Lines)).
		Msg("scene reloaded")
}

func (l *Loop) draw(transform mgl32.Mat4, dt time.Duration) error {
	f := l.current
	l.win.Clear(l.opts.ClearColor)

	if g := l.opts.Grid; g != nil {
		if err := l.win.Draw(g.Minor, transform, l.opts.GridMinor); err != nil {
			return fmt.Errorf("draw grid: %w", err)
		}
		if err := l.win.Draw(g.Major, transform, l.opts.GridMajor); err != nil {
			return fmt.Errorf("draw grid: %w", err)
		}
	}
	if err := l.win.Draw(f.Lines, transform, l.opts.LinePen); err != nil {
		return fmt.Errorf("draw lines: %w", err)
	}
	if err := l.win.Draw(f.Points, transform, l.opts.PointPen); err != nil {
		return fmt.Errorf("draw points: %w", err)
	}

	if st := l.opts.Stats; st != nil {
		st.Tick(dt, f.Points.Primitives(), f.Lines.Primitives())
		if ov, ok := l.win.(Overlay); ok {
			if err := ov.DrawOverlay(st.Lines()); err != nil {
				return fmt.Errorf("draw overlay: %w", err)
			}
		}
	}
	return nil
}

// Current returns the Frame being rendered.
func (l *Loop) Current() *Frame { return l.current }

// State returns Closing once a close event or cancellation was seen.
func (l *Loop) State() State { return l.state }

// Frames returns the number of frames presented.
func (l *Loop) Frames() int { return l.frames }

// Reloads returns the number of successful scene replacements.
func (l *Loop) Reloads() int { return l.reloads }

// ReloadFailures returns the number of change events whose file failed to load.
func (l *Loop) ReloadFailures() int { return l.failures }
