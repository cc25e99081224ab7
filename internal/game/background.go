package game

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"

	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

var (
	skyTop     = colorful.Color{R: 0.01, G: 0.01, B: 0.03}
	skyHorizon = colorful.Color{R: 0.12, G: 0.08, B: 0.10}
	crust      = colorful.Color{R: 0.45, G: 0.30, B: 0.15}
	sulphur    = colorful.Color{R: 0.80, G: 0.68, B: 0.28}
)

// loadBackground returns a width x height image holding the artwork at path.
// Trails are burned into the returned image, so it is never the decoded
// source itself. A missing file falls back to a procedural backdrop.
func loadBackground(path string, width, height int, horizon float64, seed int64) (*ebiten.Image, error) {
	art, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "load background %s", path)
		}
		log.Printf("Background %s not found, using procedural backdrop", path)
		return ebiten.NewImageFromImage(proceduralBackground(width, height, horizon, seed)), nil
	}

	bg := ebiten.NewImage(width, height)
	bg.Fill(color.Black)
	bg.DrawImage(art, nil)
	return bg, nil
}

// proceduralBackground paints a night sky above horizon and a noisy sulphur
// plain below it.
func proceduralBackground(width, height int, horizon float64, seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	noise := perlin.NewPerlin(2, 2, 3, seed)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c colorful.Color
			if fy := float64(y); fy < horizon {
				c = skyTop.BlendLab(skyHorizon, fy/horizon)
			} else {
				n := noise.Noise2D(float64(x)/40, (fy-horizon)/12)
				c = crust.BlendLab(sulphur, clamp01(0.5+n))
			}
			r, g, b := c.Clamped().RGB255()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}
