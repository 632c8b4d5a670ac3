package scene

// Point is a position in scene space.
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Line is an undirected segment between two points.
type Line struct {
	P1 Point `json:"p1"`
	P2 Point `json:"p2"`
}

// Scene is the decoded content of a plot file: an ordered list of points and an
// ordered list of line segments. A Scene is replaced as a whole when the file
// changes and is never edited in place.
type Scene struct {
	Points []Point `json:"points"`
	Lines  []Line  `json:"lines"`
}

// Empty reports whether the scene has nothing to draw.
func (s *Scene) Empty() bool {
	return s == nil || (len(s.Points) == 0 && len(s.Lines) == 0)
}
