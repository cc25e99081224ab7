package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/volcano-plume/internal/config"
	"github.com/iburimskiy/volcano-plume/internal/eruption"
)

type legendEntry struct {
	label string
	color color.RGBA
	x, y  float64
}

// legendEntries lays out one row per species, lightest gas first.
func legendEntries() []legendEntry {
	order := []eruption.Species{eruption.H2O, eruption.H2S, eruption.CO2, eruption.SO2}
	entries := make([]legendEntry, 0, len(order))
	for i, s := range order {
		entries = append(entries, legendEntry{
			label: s.LegendLabel(),
			color: s.LegendColor(),
			x:     config.LegendX,
			y:     float64(config.LegendY + i*config.LegendSpacing),
		})
	}
	return entries
}

type legend struct {
	face    *text.GoXFace
	entries []legendEntry
}

func newLegend() *legend {
	return &legend{
		face:    text.NewGoXFace(basicfont.Face7x13),
		entries: legendEntries(),
	}
}

func (l *legend) Draw(screen *ebiten.Image) {
	m := l.face.Metrics()
	height := m.HAscent + m.HDescent

	for _, e := range l.entries {
		width := text.Advance(e.label, l.face)
		vector.DrawFilledRect(screen, float32(e.x), float32(e.y), float32(width), float32(height), color.Black, false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(e.x, e.y)
		op.ColorScale.ScaleWithColor(e.color)
		text.Draw(screen, e.label, l.face, op)
	}
}
