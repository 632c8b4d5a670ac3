package geometry

import "github.com/go-gl/mathgl/mgl32"

const (
	DefaultGridExtent    = 50
	DefaultGridMinorStep = 1
	DefaultGridMajorStep = 10
)

// Grid is an editor grid on the XZ plane (Y=0), split so the major lines can
// be drawn brighter than the minor ones.
type Grid struct {
	Minor *DrawableSet
	Major *DrawableSet
}

// BuildGrid returns grid lines from -extent to +extent every minorStep units.
// Lines whose coordinate is a multiple of majorStep, including both axes, go to
// Major.
func BuildGrid(extent, minorStep, majorStep int) Grid {
	if minorStep <= 0 {
		minorStep = DefaultGridMinorStep
	}
	if majorStep <= 0 {
		majorStep = DefaultGridMajorStep
	}
	g := Grid{
		Minor: &DrawableSet{Kind: Lines},
		Major: &DrawableSet{Kind: Lines},
	}
	e := float32(extent)
	for c := -extent; c <= extent; c += minorStep {
		set := g.Minor
		if c%majorStep == 0 {
			set = g.Major
		}
		v := float32(c)
		addSegment(set, mgl32.Vec3{v, 0, -e}, mgl32.Vec3{v, 0, e})
		addSegment(set, mgl32.Vec3{-e, 0, v}, mgl32.Vec3{e, 0, v})
	}
	return g
}

func addSegment(d *DrawableSet, a, b mgl32.Vec3) {
	n := uint32(len(d.Vertices))
	d.Vertices = append(d.Vertices, Vertex{Position: a}, Vertex{Position: b})
	d.Indices = append(d.Indices, n, n+1)
}
