package eruption

import "math"

// Vec is a 2-D position or velocity in screen pixels.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}
