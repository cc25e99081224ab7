package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// surface lets the eruption draw onto an ebiten image.
type surface struct {
	img *ebiten.Image
}

func (s surface) DrawLine(x0, y0, x1, y1 float64, clr color.RGBA) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, false)
}

func (s surface) FillRect(x, y, width, height float64, clr color.RGBA) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(width), float32(height), clr, false)
}
