package render

import (
	"plotview/internal/geometry"
	"plotview/internal/scene"
)

// Frame is a scene together with the drawables built from it. A Frame is never
// modified after NewFrame returns; the loop replaces its current Frame as a
// whole.
type Frame struct {
	Scene  *scene.Scene
	Lines  *geometry.DrawableSet
	Points *geometry.DrawableSet
}

// NewFrame builds both drawable sets for s. Both are always rebuilt together.
func NewFrame(s *scene.Scene) *Frame {
	if s == nil {
		s = &scene.Scene{}
	}
	return &Frame{
		Scene:  s,
		Lines:  geometry.BuildLineSet(s),
		Points: geometry.BuildPointSet(s),
	}
}
