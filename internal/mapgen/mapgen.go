package mapgen

import (
	"github.com/chewxy/math32"

	"plotview/internal/scene"
)

// TerrainOptions controls the generated height field.
// Width/Depth count grid vertices on X/Z; Spacing is the world distance between
// neighbours. Octaves, Frequency, Lacunarity and Gain shape the fractal noise.
type TerrainOptions struct {
	Width       int
	Depth       int
	Spacing     float32
	HeightScale float32

	Seed       int64
	Octaves    int
	Frequency  float32
	Lacunarity float32
	Gain       float32
}

// DefaultTerrainOptions returns a 32x32 lattice with unit spacing and seed 1.
func DefaultTerrainOptions() TerrainOptions {
	return TerrainOptions{
		Width:       32,
		Depth:       32,
		Spacing:     1,
		HeightScale: 3,
		Seed:        1,
		Octaves:     4,
		Frequency:   0.08,
		Lacunarity:  2,
		Gain:        0.5,
	}
}

func (o TerrainOptions) withDefaults() TerrainOptions {
	d := DefaultTerrainOptions()
	if o.Spacing <= 0 {
		o.Spacing = d.Spacing
	}
	if o.HeightScale <= 0 {
		o.HeightScale = d.HeightScale
	}
	if o.Octaves <= 0 {
		o.Octaves = d.Octaves
	}
	if o.Frequency <= 0 {
		o.Frequency = d.Frequency
	}
	if o.Lacunarity <= 0 {
		o.Lacunarity = d.Lacunarity
	}
	if o.Gain <= 0 {
		o.Gain = d.Gain
	}
	return o
}

// Terrain samples fractal value noise on a Width x Depth lattice centred on the
// origin and returns it as a wireframe plot: one point per lattice vertex and a
// line to the +X and +Z neighbours. The same options always give the same scene.
func Terrain(opts TerrainOptions) *scene.Scene {
	if opts.Width <= 0 || opts.Depth <= 0 {
		return &scene.Scene{}
	}
	opts = opts.withDefaults()

	startX := -float32(opts.Width-1) * opts.Spacing * 0.5
	startZ := -float32(opts.Depth-1) * opts.Spacing * 0.5
	at := func(x, z int) scene.Point {
		h := fractalValueNoise2D(float32(x)*opts.Frequency, float32(z)*opts.Frequency,
			opts.Seed, opts.Octaves, opts.Lacunarity, opts.Gain)
		if math32.IsNaN(h) || math32.IsInf(h, 0) {
			h = 0
		}
		return scene.Point{
			X: startX + float32(x)*opts.Spacing,
			Y: h * opts.HeightScale,
			Z: startZ + float32(z)*opts.Spacing,
		}
	}

	s := &scene.Scene{
		Points: make([]scene.Point, 0, opts.Width*opts.Depth),
		Lines:  make([]scene.Line, 0, 2*opts.Width*opts.Depth),
	}
	for z := 0; z < opts.Depth; z++ {
		for x := 0; x < opts.Width; x++ {
			p := at(x, z)
			s.Points = append(s.Points, p)
			if x+1 < opts.Width {
				s.Lines = append(s.Lines, scene.Line{P1: p, P2: at(x+1, z)})
			}
			if z+1 < opts.Depth {
				s.Lines = append(s.Lines, scene.Line{P1: p, P2: at(x, z+1)})
			}
		}
	}
	return s
}

// fractalValueNoise2D layers octaves of value noise. Output is in [0,1].
func fractalValueNoise2D(x, y float32, seed int64, octaves int, lacunarity, gain float32) float32 {
	var sum, maxAmp float32
	amplitude, freq := float32(1), float32(1)
	for i := 0; i < octaves; i++ {
		sum += valueNoise2D(x*freq, y*freq, int32(seed)+int32(i)) * amplitude
		maxAmp += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if maxAmp == 0 {
		return 0
	}
	return sum / maxAmp
}

func valueNoise2D(x, y float32, seed int32) float32 {
	x0 := int32(math32.Floor(x))
	y0 := int32(math32.Floor(y))
	sx := smoothStep(x - float32(x0))
	sy := smoothStep(y - float32(y0))

	ix0 := lerp(hash2D(x0, y0, seed), hash2D(x0+1, y0, seed), sx)
	ix1 := lerp(hash2D(x0, y0+1, seed), hash2D(x0+1, y0+1, seed), sx)
	return lerp(ix0, ix1, sy)
}

// hash2D maps a lattice coordinate to a pseudo-random value in [0,1].
func hash2D(x, y, seed int32) float32 {
	n := x*374761393 + y*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n ^= n >> 16
	return float32(n&0x7fffffff) / 2147483647.0
}

func lerp(a, b, t float32) float32 { return a + (b-a)*t }

func smoothStep(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}
