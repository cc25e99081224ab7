package eruption

import "image/color"

type line struct {
	x0, y0, x1, y1 float64
	clr            color.RGBA
}

type recordingTarget struct {
	lines []line
}

func (r *recordingTarget) DrawLine(x0, y0, x1, y1 float64, clr color.RGBA) {
	r.lines = append(r.lines, line{x0, y0, x1, y1, clr})
}

type rect struct {
	x, y, w, h float64
	clr        color.RGBA
}

type recordingMarkers struct {
	rects []rect
}

func (r *recordingMarkers) FillRect(x, y, w, h float64, clr color.RGBA) {
	r.rects = append(r.rects, rect{x, y, w, h, clr})
}

// scriptedSource replays fixed species picks and launch angles, repeating
// the last value once a script runs out.
type scriptedSource struct {
	picks  []int
	angles []float64
}

func (s *scriptedSource) Choose(n int) int {
	if len(s.picks) == 0 {
		return 0
	}
	v := s.picks[0]
	if len(s.picks) > 1 {
		s.picks = s.picks[1:]
	}
	return v % n
}

func (s *scriptedSource) Uniform(lo, hi float64) float64 {
	if len(s.angles) == 0 {
		return (lo + hi) / 2
	}
	v := s.angles[0]
	if len(s.angles) > 1 {
		s.angles = s.angles[1:]
	}
	return v
}

var testBounds = Bounds{Width: 639, Height: 360}

func straightUp(species Species) *scriptedSource {
	return &scriptedSource{picks: []int{int(species)}, angles: []float64{90}}
}

// badPick always returns the same species index, valid or not.
type badPick struct {
	n int
}

func (b *badPick) Choose(int) int { return b.n }
func (b *badPick) Uniform(lo, hi float64) float64 { return lo }
