package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"plotview/internal/scene"
)

// Bounds is an axis-aligned box. An empty Bounds has Min > Max.
type Bounds struct {
	Min, Max mgl32.Vec3
}

// EmptyBounds returns a box that contains nothing.
func EmptyBounds() Bounds {
	inf := math32.Inf(1)
	return Bounds{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

// BoundsOf returns the box around every point and line endpoint of s.
func BoundsOf(s *scene.Scene) Bounds {
	b := EmptyBounds()
	if s == nil {
		return b
	}
	for _, p := range s.Points {
		b.extend(p)
	}
	for _, l := range s.Lines {
		b.extend(l.P1)
		b.extend(l.P2)
	}
	return b
}

func (b *Bounds) extend(p scene.Point) {
	b.Min = mgl32.Vec3{math32.Min(b.Min[0], p.X), math32.Min(b.Min[1], p.Y), math32.Min(b.Min[2], p.Z)}
	b.Max = mgl32.Vec3{math32.Max(b.Max[0], p.X), math32.Max(b.Max[1], p.Y), math32.Max(b.Max[2], p.Z)}
}

// Empty reports whether no point was added to b.
func (b Bounds) Empty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// Center returns the midpoint of the box.
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Radius is the radius of the sphere through the box corners.
func (b Bounds) Radius() float32 {
	if b.Empty() {
		return 0
	}
	return b.Max.Sub(b.Min).Len() / 2
}
