package scene

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
)

var jsonAPI = sonic.ConfigStd

// JSONCodec is the textual encoding:
//
//	{"points":[{"x":0,"y":0,"z":0}],"lines":[{"p1":{...},"p2":{...}}]}
//
// Both top-level fields and every coordinate are required. Unknown fields are
// ignored.
type JSONCodec struct{}

func (JSONCodec) Format() Format { return FormatJSON }

// wire types use pointers so that absent fields can be told apart from zeros.
type jsonPoint struct {
	X *float32 `json:"x"`
	Y *float32 `json:"y"`
	Z *float32 `json:"z"`
}

type jsonLine struct {
	P1 *jsonPoint `json:"p1"`
	P2 *jsonPoint `json:"p2"`
}

type jsonScene struct {
	Points *[]jsonPoint `json:"points"`
	Lines  *[]jsonLine  `json:"lines"`
}

func (c JSONCodec) Decode(data []byte) (*Scene, error) {
	if !jsonAPI.Valid(data) {
		return nil, c.fail(errors.New("malformed JSON"))
	}
	var w jsonScene
	if err := jsonAPI.Unmarshal(data, &w); err != nil {
		return nil, c.fail(err)
	}
	if w.Points == nil {
		return nil, c.fail(errors.New(`missing field "points"`))
	}
	if w.Lines == nil {
		return nil, c.fail(errors.New(`missing field "lines"`))
	}

	s := &Scene{
		Points: make([]Point, 0, len(*w.Points)),
		Lines:  make([]Line, 0, len(*w.Lines)),
	}
	for i, wp := range *w.Points {
		p, err := wp.point()
		if err != nil {
			return nil, c.fail(fmt.Errorf("points[%d]: %w", i, err))
		}
		s.Points = append(s.Points, p)
	}
	for i, wl := range *w.Lines {
		if wl.P1 == nil || wl.P2 == nil {
			return nil, c.fail(fmt.Errorf("lines[%d]: missing endpoint", i))
		}
		p1, err := wl.P1.point()
		if err != nil {
			return nil, c.fail(fmt.Errorf("lines[%d].p1: %w", i, err))
		}
		p2, err := wl.P2.point()
		if err != nil {
			return nil, c.fail(fmt.Errorf("lines[%d].p2: %w", i, err))
		}
		s.Lines = append(s.Lines, Line{P1: p1, P2: p2})
	}
	return s, nil
}

func (c JSONCodec) Encode(s *Scene) ([]byte, error) {
	out := Scene{Points: []Point{}, Lines: []Line{}}
	if s != nil {
		if s.Points != nil {
			out.Points = s.Points
		}
		if s.Lines != nil {
			out.Lines = s.Lines
		}
	}
	return jsonAPI.Marshal(&out)
}

func (JSONCodec) fail(err error) error {
	return &DecodeError{Format: FormatJSON, Offset: -1, Err: err}
}

func (p jsonPoint) point() (Point, error) {
	if p.X == nil || p.Y == nil || p.Z == nil {
		return Point{}, errors.New("point needs x, y and z")
	}
	return Point{X: *p.X, Y: *p.Y, Z: *p.Z}, nil
}
