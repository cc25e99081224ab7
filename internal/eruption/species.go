package eruption

import "image/color"

// Species is the simulated gas a particle carries.
type Species int

const (
	SO2 Species = iota
	CO2
	H2S
	H2O

	speciesCount = 4
)

// AllSpecies returns every species in declaration order.
func AllSpecies() []Species {
	return []Species{SO2, CO2, H2S, H2O}
}

func (s Species) String() string {
	switch s {
	case SO2:
		return "SO2"
	case CO2:
		return "CO2"
	case H2S:
		return "H2S"
	case H2O:
		return "H2O"
	default:
		return "unknown"
	}
}

// LegendColor is the swatch colour used for the species in the legend.
func (s Species) LegendColor() color.RGBA {
	switch s {
	case SO2:
		return color.RGBA{R: 180, G: 180, B: 180, A: 255}
	case CO2:
		return color.RGBA{R: 120, G: 120, B: 120, A: 255}
	case H2S:
		return color.RGBA{R: 80, G: 80, B: 80, A: 255}
	default:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
}

// LegendLabel is the legend text for the species. SO2 is labelled together
// with S2 since both come out of the same plume.
func (s Species) LegendLabel() string {
	if s == SO2 {
		return "--- SO2/S2"
	}
	return "--- " + s.String()
}
