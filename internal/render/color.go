package render

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Color is RGBA with components in [0, 1].
type Color [4]float32

var (
	White       = Color{1, 1, 1, 1}
	Transparent = Color{0, 0, 0, 0}
)

// RGBA builds a Color from 8-bit components.
func RGBA(r, g, b, a uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

// RGBA8 returns the color as 8-bit components.
func (c Color) RGBA8() (r, g, b, a uint8) {
	conv := func(v float32) uint8 {
		switch {
		case v <= 0:
			return 0
		case v >= 1:
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return conv(c[0]), conv(c[1]), conv(c[2]), conv(c[3])
}

// UnmarshalText parses "#rrggbb" or "#rrggbbaa" (the # is optional).
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", string(text))
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("color %q: %w", string(text), err)
	}
	out := Color{0, 0, 0, 1}
	for i, v := range raw {
		out[i] = float32(v) / 255
	}
	*c = out
	return nil
}

func (c Color) MarshalText() ([]byte, error) {
	r, g, b, a := c.RGBA8()
	return []byte(fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)), nil
}
