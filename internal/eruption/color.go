package eruption

import (
	"image/color"
	"math"
)

// DefaultColorCeiling caps the interpolation factor so the hot endpoint is
// never fully reached.
const DefaultColorCeiling = 0.8

// Interpolate blends c1 towards c2 by f, with f clamped to
// [0, DefaultColorCeiling].
func Interpolate(c1, c2 color.RGBA, f float64) color.RGBA {
	return InterpolateCeiling(c1, c2, f, DefaultColorCeiling)
}

// InterpolateCeiling blends c1 towards c2 by f clamped to [0, ceiling].
// Channels are truncated, not rounded. Alpha is taken from c1. A NaN factor
// is treated as 0.
func InterpolateCeiling(c1, c2 color.RGBA, f, ceiling float64) color.RGBA {
	if math.IsNaN(f) {
		f = 0
	}
	f = clamp(f, 0, ceiling)
	return color.RGBA{
		R: lerpChannel(c1.R, c2.R, f),
		G: lerpChannel(c1.G, c2.G, f),
		B: lerpChannel(c1.B, c2.B, f),
		A: c1.A,
	}
}

func lerpChannel(a, b uint8, f float64) uint8 {
	return uint8(int(float64(a) + (float64(b)-float64(a))*f))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
