package camera

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plotview/internal/geometry"
	"plotview/internal/input"
	"plotview/internal/render"
	"plotview/internal/scene"
)

var vp = render.Viewport{Width: 1024, Height: 1024}

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, 1e-3), "want %v, got %v", want, got)
}

// project maps p to normalized device coordinates.
func project(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformCoordinate(p, m)
}

func TestDefaultPose(t *testing.T) {
	c := NewOrbit()
	assertVec(t, mgl32.Vec3{10, 10, 10}, c.Eye())
	assertVec(t, mgl32.Vec3{}, c.Target)

	m := c.Update(0, vp)
	assertVec(t, mgl32.Vec3{0, 0, project(m, mgl32.Vec3{}).Z()}, project(m, mgl32.Vec3{}))
}

func TestOrbitKeepsDistance(t *testing.T) {
	c := NewOrbit()
	d := c.Distance
	c.HandleInput(input.Drag{Button: input.ButtonLeft, DX: 100, DY: 40})
	assert.InDelta(t, d, c.Eye().Sub(c.Target).Len(), 1e-3)
	assert.NotEqual(t, float32(45), c.Yaw)

	for i := 0; i < 100; i++ {
		c.HandleInput(input.Drag{Button: input.ButtonLeft, DY: 100})
	}
	assert.LessOrEqual(t, c.Pitch, float32(maxPitch))
}

func TestPanMovesTarget(t *testing.T) {
	c := NewOrbit()
	yaw, pitch := c.Yaw, c.Pitch
	c.HandleInput(input.Drag{Button: input.ButtonRight, DX: 50})
	assert.NotEqual(t, mgl32.Vec3{}, c.Target)
	assert.Equal(t, yaw, c.Yaw)
	assert.Equal(t, pitch, c.Pitch)
}

func TestZoom(t *testing.T) {
	c := NewOrbit()
	d := c.Distance
	c.HandleInput(input.Scroll{Delta: 1})
	assert.Less(t, c.Distance, d)
	c.HandleInput(input.Scroll{Delta: -2})
	assert.Greater(t, c.Distance, d)
	c.HandleInput(input.Scroll{Delta: 1e6})
	assert.GreaterOrEqual(t, c.Distance, float32(minDistance))
}

func TestHeldKeysScaleWithDt(t *testing.T) {
	c := NewOrbit()
	yaw := c.Yaw
	c.HandleInput(input.KeyState{Key: input.KeyRight, Down: true})
	c.Update(500*time.Millisecond, vp)
	assert.InDelta(t, yaw+45, c.Yaw, 1e-3)

	c.HandleInput(input.KeyState{Key: input.KeyRight, Down: false})
	c.Update(time.Second, vp)
	assert.InDelta(t, yaw+45, c.Yaw, 1e-3)
}

func TestFitAndReset(t *testing.T) {
	c := NewOrbit()
	b := geometry.BoundsOf(&scene.Scene{Points: []scene.Point{{X: 100, Y: 100, Z: 100}, {X: 102, Y: 102, Z: 102}}})
	c.Fit(b)
	assertVec(t, mgl32.Vec3{101, 101, 101}, c.Target)

	m := c.Update(0, vp)
	for _, p := range []mgl32.Vec3{b.Min, b.Max, b.Center()} {
		ndc := project(m, p)
		assert.True(t, ndc.X() >= -1 && ndc.X() <= 1 && ndc.Y() >= -1 && ndc.Y() <= 1 && ndc.Z() >= -1 && ndc.Z() <= 1, "%v outside view: %v", p, ndc)
	}

	fitted := c.Distance
	c.HandleInput(input.Scroll{Delta: 3})
	c.HandleInput(input.Drag{Button: input.ButtonMiddle, DX: 10, DY: 10})
	c.HandleInput(input.KeyState{Key: input.KeyR, Down: true})
	assert.Equal(t, fitted, c.Distance)
	assertVec(t, mgl32.Vec3{101, 101, 101}, c.Target)

	c.Fit(geometry.EmptyBounds())
	assert.Equal(t, fitted, c.Distance, "empty bounds ignored")
}

func TestUnknownEventsIgnored(t *testing.T) {
	c := NewOrbit()
	before := *c
	c.HandleInput(input.Resize{Width: 1, Height: 1})
	c.HandleInput(input.Close{})
	require.Equal(t, before.Target, c.Target)
	assert.Equal(t, before.Distance, c.Distance)
}

func TestDegenerateViewport(t *testing.T) {
	c := NewOrbit()
	m := c.Update(0, render.Viewport{})
	for _, v := range m {
		assert.False(t, v != v, "NaN in transform")
	}
}

func TestFitSinglePointKeepsDistance(t *testing.T) {
	c := NewOrbit()
	d := c.Distance
	c.Fit(geometry.BoundsOf(&scene.Scene{Points: []scene.Point{{}}}))
	assert.Equal(t, d, c.Distance)
	assertVec(t, mgl32.Vec3{}, c.Target)

	// A point added by a later reload is in front of the camera and on screen.
	m := c.Update(0, vp)
	clip := m.Mul4x1(mgl32.Vec4{1, 1, 1, 1})
	assert.Greater(t, clip.W(), float32(0))
	ndc := project(m, mgl32.Vec3{1, 1, 1})
	assert.True(t, ndc.Z() >= -1 && ndc.Z() <= 1, "depth %v", ndc.Z())

	c.HandleInput(input.Scroll{Delta: 2})
	c.HandleInput(input.KeyState{Key: input.KeyR, Down: true})
	assert.Equal(t, d, c.Distance)
}

func TestClipPlanesFollowZoom(t *testing.T) {
	c := NewOrbit()
	c.Fit(geometry.BoundsOf(&scene.Scene{Points: []scene.Point{{}, {X: 1, Y: 1, Z: 1}}}))
	for i := 0; i < 10; i++ {
		c.HandleInput(input.Scroll{Delta: 1})
	}
	near, far := c.ClipPlanes()
	assert.Less(t, near, c.Distance/10)
	assert.Greater(t, far, c.Distance*10)

	// Geometry just in front of the eye is not clipped.
	eye := c.Eye()
	p := eye.Add(c.Target.Sub(eye).Normalize().Mul(0.1))
	ndc := project(c.Update(0, vp), p)
	assert.True(t, ndc.Z() >= -1 && ndc.Z() <= 1, "depth %v", ndc.Z())
}
