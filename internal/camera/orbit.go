package camera

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"plotview/internal/geometry"
	"plotview/internal/input"
	"plotview/internal/render"
)

const (
	defaultFOV = 45

	// Clip planes follow the orbit distance.
	nearRatio = 0.01
	farRatio  = 100

	minDistance = 1e-3
	maxPitch    = 89.0
	// fitMargin leaves some room around a fitted scene.
	fitMargin = 1.1
	// minFitRadius is the smallest bounding radius Fit zooms to. Smaller
	// scenes, such as a single point, are only re-centred.
	minFitRadius = 1e-6
)

// Orbit is a camera that circles a target point. Left drag orbits, right or
// middle drag pans the target, the wheel zooms, held arrow keys orbit at
// KeyRate degrees per second and R restores the last fitted (or default) pose.
type Orbit struct {
	Target   mgl32.Vec3
	Distance float32
	// Yaw and Pitch are in degrees. Yaw 0 looks down -Z; positive pitch looks
	// down on the target.
	Yaw   float32
	Pitch float32

	FOV float32 // vertical, degrees

	OrbitSpeed float32 // degrees per pixel of drag
	PanSpeed   float32 // fraction of distance per pixel of drag
	ZoomStep   float32 // fraction of distance per wheel notch
	KeyRate    float32 // degrees per second while an arrow key is held

	held map[input.Key]bool
	home pose
}

type pose struct {
	target     mgl32.Vec3
	distance   float32
	yaw, pitch float32
}

// NewOrbit returns a camera at (10, 10, 10) looking at the origin with a 45
// degree field of view.
func NewOrbit() *Orbit {
	c := &Orbit{
		FOV:        defaultFOV,
		OrbitSpeed: 0.3,
		PanSpeed:   0.0015,
		ZoomStep:   0.1,
		KeyRate:    90,
		held:       make(map[input.Key]bool),
	}
	c.LookFrom(mgl32.Vec3{10, 10, 10}, mgl32.Vec3{})
	c.home = c.pose()
	return c
}

// LookFrom places the camera at eye looking at target.
func (c *Orbit) LookFrom(eye, target mgl32.Vec3) {
	d := eye.Sub(target)
	c.Target = target
	c.Distance = math32.Max(d.Len(), minDistance)
	c.Yaw = mgl32.RadToDeg(math32.Atan2(d[0], d[2]))
	c.Pitch = mgl32.RadToDeg(math32.Asin(mgl32.Clamp(d[1]/c.Distance, -1, 1)))
}

// Fit frames b so its bounding sphere fills the view, keeping the current
// direction, and makes that the pose R returns to. An empty box is ignored; a
// box with no extent moves the target and keeps the current distance.
func (c *Orbit) Fit(b geometry.Bounds) {
	if b.Empty() {
		return
	}
	c.Target = b.Center()
	if r := b.Radius(); r >= minFitRadius {
		half := mgl32.DegToRad(c.FOV) / 2
		c.Distance = math32.Max(fitMargin*r/math32.Sin(half), minDistance)
	}
	c.home = c.pose()
}

// Eye returns the camera position.
func (c *Orbit) Eye() mgl32.Vec3 {
	yaw, pitch := mgl32.DegToRad(c.Yaw), mgl32.DegToRad(c.Pitch)
	dir := mgl32.Vec3{
		math32.Cos(pitch) * math32.Sin(yaw),
		math32.Sin(pitch),
		math32.Cos(pitch) * math32.Cos(yaw),
	}
	return c.Target.Add(dir.Mul(c.Distance))
}

// HandleInput applies one input event. Unknown events are ignored.
func (c *Orbit) HandleInput(ev input.Event) {
	switch e := ev.(type) {
	case input.Drag:
		switch e.Button {
		case input.ButtonLeft:
			c.orbit(-e.DX*c.OrbitSpeed, e.DY*c.OrbitSpeed)
		case input.ButtonRight, input.ButtonMiddle:
			c.pan(e.DX, e.DY)
		}
	case input.Scroll:
		c.zoom(e.Delta)
	case input.KeyState:
		if e.Key == input.KeyR && e.Down {
			c.reset()
			return
		}
		c.held[e.Key] = e.Down
	}
}

// Update applies held keys for dt and returns projection * view.
func (c *Orbit) Update(dt time.Duration, vp render.Viewport) mgl32.Mat4 {
	step := c.KeyRate * float32(dt.Seconds())
	var dyaw, dpitch float32
	if c.held[input.KeyLeft] {
		dyaw -= step
	}
	if c.held[input.KeyRight] {
		dyaw += step
	}
	if c.held[input.KeyUp] {
		dpitch += step
	}
	if c.held[input.KeyDown] {
		dpitch -= step
	}
	if dyaw != 0 || dpitch != 0 {
		c.orbit(dyaw, dpitch)
	}
	return c.Projection(vp).Mul4(c.View())
}

// View returns the world-to-eye matrix.
func (c *Orbit) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(), c.Target, mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix for vp. The near and far planes
// scale with Distance so zooming never clips the orbited region.
func (c *Orbit) Projection(vp render.Viewport) mgl32.Mat4 {
	near, far := c.ClipPlanes()
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), vp.Aspect(), near, far)
}

// ClipPlanes returns the near and far distances used by Projection.
func (c *Orbit) ClipPlanes() (near, far float32) {
	return c.Distance * nearRatio, c.Distance * farRatio
}

func (c *Orbit) orbit(dyaw, dpitch float32) {
	c.Yaw = math32.Mod(c.Yaw+dyaw, 360)
	c.Pitch = mgl32.Clamp(c.Pitch+dpitch, -maxPitch, maxPitch)
}

// pan moves the target in the view plane.
func (c *Orbit) pan(dx, dy float32) {
	view := c.View()
	right := mgl32.Vec3{view[0], view[4], view[8]}
	up := mgl32.Vec3{view[1], view[5], view[9]}
	scale := c.Distance * c.PanSpeed
	c.Target = c.Target.Sub(right.Mul(dx * scale)).Add(up.Mul(dy * scale))
}

func (c *Orbit) zoom(notches float32) {
	c.Distance = math32.Max(c.Distance*math32.Pow(1-c.ZoomStep, notches), minDistance)
}

func (c *Orbit) pose() pose {
	return pose{target: c.Target, distance: c.Distance, yaw: c.Yaw, pitch: c.Pitch}
}

func (c *Orbit) reset() {
	p := c.home
	c.Target, c.Distance, c.Yaw, c.Pitch = p.target, p.distance, p.yaw, p.pitch
	clear(c.held)
}
