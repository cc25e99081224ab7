package game

import (
	"testing"

	"github.com/iburimskiy/volcano-plume/internal/config"
	"github.com/iburimskiy/volcano-plume/internal/eruption"
)

func TestLegendEntries(t *testing.T) {
	entries := legendEntries()
	want := []eruption.Species{eruption.H2O, eruption.H2S, eruption.CO2, eruption.SO2}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, s := range want {
		e := entries[i]
		if e.label != s.LegendLabel() || e.color != s.LegendColor() {
			t.Errorf("entry %d = %q %v, want %q %v", i, e.label, e.color, s.LegendLabel(), s.LegendColor())
		}
		if e.x != config.LegendX || e.y != float64(config.LegendY+i*config.LegendSpacing) {
			t.Errorf("entry %d at (%v, %v)", i, e.x, e.y)
		}
	}
}
