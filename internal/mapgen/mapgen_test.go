package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerrainShape(t *testing.T) {
	opts := DefaultTerrainOptions()
	opts.Width, opts.Depth = 4, 3
	s := Terrain(opts)

	require.Len(t, s.Points, 12)
	// (w-1)*d horizontal plus w*(d-1) vertical segments
	assert.Len(t, s.Lines, 3*3+4*2)

	first, last := s.Points[0], s.Points[len(s.Points)-1]
	assert.InDelta(t, -1.5, first.X, 1e-6)
	assert.InDelta(t, -1.0, first.Z, 1e-6)
	assert.InDelta(t, 1.5, last.X, 1e-6)
	assert.InDelta(t, 1.0, last.Z, 1e-6)
	for _, p := range s.Points {
		assert.GreaterOrEqual(t, p.Y, float32(0))
		assert.LessOrEqual(t, p.Y, opts.HeightScale)
	}
}

func TestTerrainDeterministic(t *testing.T) {
	opts := DefaultTerrainOptions()
	opts.Width, opts.Depth = 8, 8
	assert.Equal(t, Terrain(opts), Terrain(opts))

	other := opts
	other.Seed = opts.Seed + 7
	assert.NotEqual(t, Terrain(opts).Points, Terrain(other).Points)
}

func TestTerrainLinesShareEndpoints(t *testing.T) {
	opts := DefaultTerrainOptions()
	opts.Width, opts.Depth = 2, 1
	s := Terrain(opts)
	require.Len(t, s.Lines, 1)
	assert.Equal(t, s.Points[0], s.Lines[0].P1)
	assert.Equal(t, s.Points[1], s.Lines[0].P2)
}

func TestTerrainEmpty(t *testing.T) {
	s := Terrain(TerrainOptions{})
	assert.True(t, s.Empty())
}

func TestHashRange(t *testing.T) {
	for i := int32(-50); i < 50; i++ {
		v := hash2D(i, i*3, 11)
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(1))
	}
}
