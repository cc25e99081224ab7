package eruption

import "image/color"

// TrailTarget is a persistent surface that keeps every line drawn on it.
type TrailTarget interface {
	DrawLine(x0, y0, x1, y1 float64, clr color.RGBA)
}

// MarkerTarget is the per-frame surface particles are rendered onto.
type MarkerTarget interface {
	FillRect(x, y, width, height float64, clr color.RGBA)
}

// Bounds is the screen extent used for culling.
type Bounds struct {
	Width, Height float64
}
