package geometry

import (
	"github.com/go-gl/mathgl/mgl32"

	"plotview/internal/scene"
)

// Kind is the primitive type a DrawableSet assembles its vertices into.
type Kind int

const (
	Points Kind = iota
	Lines
)

func (k Kind) String() string {
	switch k {
	case Points:
		return "points"
	case Lines:
		return "lines"
	default:
		return "unknown"
	}
}

// Vertex carries a position only; color is uniform per draw.
type Vertex struct {
	Position mgl32.Vec3
}

func vertexOf(p scene.Point) Vertex {
	return Vertex{Position: mgl32.Vec3{p.X, p.Y, p.Z}}
}

// DrawableSet is the renderable form of one primitive kind: a flat vertex array
// and an index array saying how vertices assemble into primitives.
type DrawableSet struct {
	Kind     Kind
	Vertices []Vertex
	Indices  []uint32
}

// Primitives returns the number of points or line segments in the set.
func (d *DrawableSet) Primitives() int {
	if d == nil {
		return 0
	}
	if d.Kind == Lines {
		return len(d.Indices) / 2
	}
	return len(d.Indices)
}

// BuildLineSet converts the scene's segments to a line list. Segment i owns
// vertices 2i and 2i+1; vertices are never shared between segments, even when
// endpoints coincide.
func BuildLineSet(s *scene.Scene) *DrawableSet {
	var lines []scene.Line
	if s != nil {
		lines = s.Lines
	}
	d := &DrawableSet{
		Kind:     Lines,
		Vertices: make([]Vertex, 0, 2*len(lines)),
		Indices:  make([]uint32, 0, 2*len(lines)),
	}
	for i, l := range lines {
		d.Vertices = append(d.Vertices, vertexOf(l.P1), vertexOf(l.P2))
		d.Indices = append(d.Indices, uint32(2*i), uint32(2*i+1))
	}
	return d
}

// BuildPointSet converts the scene's points to a point list; point i is vertex
// i and index i.
func BuildPointSet(s *scene.Scene) *DrawableSet {
	var points []scene.Point
	if s != nil {
		points = s.Points
	}
	d := &DrawableSet{
		Kind:     Points,
		Vertices: make([]Vertex, len(points)),
		Indices:  make([]uint32, len(points)),
	}
	for i, p := range points {
		d.Vertices[i] = vertexOf(p)
		d.Indices[i] = uint32(i)
	}
	return d
}
