package game

import (
	"bytes"
	"testing"
)

func TestProceduralBackgroundSize(t *testing.T) {
	img := proceduralBackground(64, 48, 30, 1)
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Fatalf("size %v, want 64x48", b)
	}
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			if a := img.RGBAAt(x, y).A; a != 255 {
				t.Fatalf("pixel (%d,%d) alpha %d, want opaque", x, y, a)
			}
		}
	}
}

func TestProceduralBackgroundDeterministic(t *testing.T) {
	a := proceduralBackground(40, 30, 20, 1979)
	b := proceduralBackground(40, 30, 20, 1979)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("same seed produced different backdrops")
	}
}

func TestProceduralBackgroundSkyDarkerThanGround(t *testing.T) {
	img := proceduralBackground(40, 30, 20, 5)

	brightness := func(x, y int) int {
		c := img.RGBAAt(x, y)
		return int(c.R) + int(c.G) + int(c.B)
	}
	for x := 0; x < 40; x++ {
		if sky, ground := brightness(x, 0), brightness(x, 25); sky >= ground {
			t.Errorf("column %d: sky %d not darker than ground %d", x, sky, ground)
		}
	}
}
