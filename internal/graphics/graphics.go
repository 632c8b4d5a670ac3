package graphics

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"plotview/internal/geometry"
	"plotview/internal/input"
	"plotview/internal/render"
)

const (
	overlayFontSize = 20
	overlayPadding  = 12
	overlayLineStep = overlayFontSize + 4
)

// pointMarkerScale converts a point size in pixels to the half-length of the
// marker cross in scene units.
const pointMarkerScale = 0.005

// Options configures the window.
type Options struct {
	Title         string
	Width, Height int
}

// Window is a resizable raylib window. It implements render.Window and
// render.Overlay. All methods must be called from the thread that called Open.
type Window struct {
	drawing bool
	width   int
	height  int
	overlay rl.Color
}

// Open creates the window and its GL context. Failure is not recoverable.
func Open(opts Options) (*Window, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	if !rl.IsWindowReady() {
		return nil, errors.New("graphics: window or GL context creation failed")
	}
	// ESC must not close the window; only the window's close button does.
	rl.SetExitKey(rl.KeyNull)
	return &Window{
		width:   rl.GetScreenWidth(),
		height:  rl.GetScreenHeight(),
		overlay: rl.Green,
	}, nil
}

// PollEvents translates the input state raylib gathered at the end of the
// previous frame into events.
func (w *Window) PollEvents() []input.Event {
	var events []input.Event
	if rl.WindowShouldClose() {
		return append(events, input.Close{})
	}
	if rl.IsWindowResized() {
		w.width, w.height = rl.GetScreenWidth(), rl.GetScreenHeight()
		events = append(events, input.Resize{Width: w.width, Height: w.height})
	}

	delta := rl.GetMouseDelta()
	if delta.X != 0 || delta.Y != 0 {
		for _, b := range []struct {
			code rl.MouseButton
			btn  input.Button
		}{
			{rl.MouseButtonLeft, input.ButtonLeft},
			{rl.MouseButtonRight, input.ButtonRight},
			{rl.MouseButtonMiddle, input.ButtonMiddle},
		} {
			if rl.IsMouseButtonDown(b.code) {
				events = append(events, input.Drag{Button: b.btn, DX: delta.X, DY: delta.Y})
			}
		}
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		events = append(events, input.Scroll{Delta: wheel})
	}

	for _, k := range keys {
		if rl.IsKeyPressed(k.code) {
			events = append(events, input.KeyState{Key: k.key, Down: true})
		}
		if rl.IsKeyReleased(k.code) {
			events = append(events, input.KeyState{Key: k.key, Down: false})
		}
	}
	return events
}

var keys = []struct {
	code int32
	key  input.Key
}{
	{rl.KeyLeft, input.KeyLeft},
	{rl.KeyRight, input.KeyRight},
	{rl.KeyUp, input.KeyUp},
	{rl.KeyDown, input.KeyDown},
	{rl.KeyR, input.KeyR},
}

// Viewport returns the current framebuffer size.
func (w *Window) Viewport() render.Viewport {
	return render.Viewport{Width: rl.GetScreenWidth(), Height: rl.GetScreenHeight()}
}

// Clear starts the frame if needed and fills it with c.
func (w *Window) Clear(c render.Color) {
	if !w.drawing {
		rl.BeginDrawing()
		w.drawing = true
	}
	rl.ClearBackground(toColor(c))
}

// Draw submits set with transform loaded as the projection matrix and an
// identity model-view. Lines use pen.Width as the GL line width; points are
// drawn as small three-axis crosses sized by pen.Width.
func (w *Window) Draw(set *geometry.DrawableSet, transform mgl32.Mat4, pen render.Pen) error {
	if !w.drawing {
		return errors.New("graphics: Draw called outside a frame")
	}
	if set == nil || len(set.Indices) == 0 {
		return nil
	}
	for _, idx := range set.Indices {
		if int(idx) >= len(set.Vertices) {
			return fmt.Errorf("graphics: index %d out of range for %d vertices", idx, len(set.Vertices))
		}
	}

	rl.DrawRenderBatchActive()
	rl.SetMatrixProjection(toMatrix(transform))
	rl.SetMatrixModelview(rl.MatrixIdentity())
	rl.BeginBlendMode(rl.BlendAlpha)
	rl.SetLineWidth(pen.Width)

	r, g, b, a := pen.Color.RGBA8()
	rl.Begin(rl.Lines)
	rl.Color4ub(r, g, b, a)
	switch set.Kind {
	case geometry.Lines:
		for i := 0; i+1 < len(set.Indices); i += 2 {
			vertex(set.Vertices[set.Indices[i]].Position)
			vertex(set.Vertices[set.Indices[i+1]].Position)
		}
	case geometry.Points:
		h := pen.Width * pointMarkerScale
		for _, idx := range set.Indices {
			p := set.Vertices[idx].Position
			for axis := 0; axis < 3; axis++ {
				var d mgl32.Vec3
				d[axis] = h
				vertex(p.Sub(d))
				vertex(p.Add(d))
			}
		}
	}
	rl.End()

	rl.DrawRenderBatchActive()
	rl.EndBlendMode()
	return nil
}

// DrawOverlay draws lines of text at the top-right corner in screen space.
func (w *Window) DrawOverlay(lines []string) error {
	if !w.drawing {
		return errors.New("graphics: DrawOverlay called outside a frame")
	}
	rl.DrawRenderBatchActive()
	sw, sh := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	rl.SetMatrixProjection(rl.MatrixOrtho(0, sw, sh, 0, 0, 1))
	rl.SetMatrixModelview(rl.MatrixIdentity())
	y := int32(overlayPadding)
	for _, text := range lines {
		x := int32(sw) - rl.MeasureText(text, overlayFontSize) - overlayPadding
		rl.DrawText(text, x, y, overlayFontSize, w.overlay)
		y += overlayLineStep
	}
	rl.DrawRenderBatchActive()
	return nil
}

// Present swaps buffers and gathers input for the next PollEvents.
func (w *Window) Present() error {
	if !w.drawing {
		rl.BeginDrawing()
	}
	rl.EndDrawing()
	w.drawing = false
	return nil
}

// Close destroys the window and its GL context.
func (w *Window) Close() {
	rl.CloseWindow()
}

func vertex(p mgl32.Vec3) {
	rl.Vertex3f(p[0], p[1], p[2])
}

func toColor(c render.Color) rl.Color {
	r, g, b, a := c.RGBA8()
	return rl.NewColor(r, g, b, a)
}

// toMatrix copies a column-major mgl32 matrix into raylib's layout, where Mi is
// element i in column-major order.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
