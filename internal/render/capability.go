package render

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"plotview/internal/geometry"
	"plotview/internal/input"
	"plotview/internal/scene"
)

// Viewport is the drawable area in pixels.
type Viewport struct {
	Width, Height int
}

// Aspect returns width/height, or 1 for a degenerate viewport.
func (v Viewport) Aspect() float32 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// Pen is the fixed style of one draw submission.
type Pen struct {
	Color Color
	// Width is the line width in pixels for line sets and the marker size for
	// point sets.
	Width float32
}

// Window is the graphics capability the loop draws through. Errors returned by
// Draw or Present are not recoverable.
type Window interface {
	// PollEvents returns the input gathered since the last call without
	// blocking.
	PollEvents() []input.Event
	Viewport() Viewport
	Clear(c Color)
	Draw(set *geometry.DrawableSet, transform mgl32.Mat4, pen Pen) error
	Present() error
}

// Overlay is implemented by windows that can draw a text overlay on top of
// the scene.
type Overlay interface {
	DrawOverlay(lines []string) error
}

// Camera turns input into a clip-space transform.
type Camera interface {
	HandleInput(ev input.Event)
	Update(dt time.Duration, vp Viewport) mgl32.Mat4
}

// Loader reads and decodes the scene at path.
type Loader interface {
	Load(path string) (*scene.Scene, error)
}

// Clock is the loop's source of time.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock uses the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time        { return time.Now() }
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }
