package eruption

import (
	"image/color"

	"github.com/pkg/errors"

	"github.com/iburimskiy/volcano-plume/internal/config"
)

// VerticalBound selects which screen extent limits a particle's y position.
type VerticalBound int

const (
	// BoundByWidth compares y against the screen width, as the demo always has.
	BoundByWidth VerticalBound = iota
	// BoundByHeight compares y against the screen height.
	BoundByHeight
)

// ErrInvalidParams is returned for a Params value that cannot drive a simulation.
var ErrInvalidParams = errors.New("invalid eruption params")

// Params is the fixed configuration of an eruption. It is copied into the
// System on construction and never modified afterwards.
type Params struct {
	Vent         Vec
	Gravity      float64
	BaseVelocity float64
	SpeedScale   [speciesCount]float64

	// Launch angle range in degrees
	MinAngle, MaxAngle float64

	Lifespan     int
	SpawnPerTick int
	MarkerSize   float64

	Warm, Hot    color.RGBA
	ColorCeiling float64

	VerticalBound VerticalBound
}

// DefaultParams returns the eruption tuned by the constants in config.
func DefaultParams() Params {
	p := Params{
		Vent:         Vec{X: config.VentX, Y: config.VentY},
		Gravity:      config.Gravity,
		BaseVelocity: config.BaseVelocity,
		SpeedScale: [speciesCount]float64{
			SO2: config.SpeedScaleSO2,
			CO2: config.SpeedScaleCO2,
			H2S: config.SpeedScaleH2S,
			H2O: config.SpeedScaleH2O,
		},
		MinAngle:      config.MinLaunchAngle,
		MaxAngle:      config.MaxLaunchAngle,
		Lifespan:      config.ParticleLifespan,
		SpawnPerTick:  config.SpawnPerTick,
		MarkerSize:    config.MarkerSize,
		Warm:          color.RGBA{R: 255, G: 120, B: 80, A: 255},
		Hot:           color.RGBA{R: 255, G: 60, B: 60, A: 255},
		ColorCeiling:  config.ColorCeiling,
		VerticalBound: BoundByHeight,
	}
	if config.VerticalBoundByWidth {
		p.VerticalBound = BoundByWidth
	}
	return p
}

// Validate reports whether p can drive a simulation.
func (p Params) Validate() error {
	if p.Lifespan <= 0 {
		return errors.Wrapf(ErrInvalidLifespan, "lifespan %d", p.Lifespan)
	}
	if p.BaseVelocity <= 0 {
		return errors.Wrapf(ErrInvalidParams, "base velocity %v must be positive", p.BaseVelocity)
	}
	for i, s := range p.SpeedScale {
		if s <= 0 {
			return errors.Wrapf(ErrInvalidParams, "speed scale for %s is %v", Species(i), s)
		}
	}
	if p.SpawnPerTick < 0 {
		return errors.Wrapf(ErrInvalidParams, "spawn rate %d is negative", p.SpawnPerTick)
	}
	if p.MinAngle > p.MaxAngle {
		return errors.Wrapf(ErrInvalidParams, "launch angle range [%v, %v] is inverted", p.MinAngle, p.MaxAngle)
	}
	if p.ColorCeiling < 0 || p.ColorCeiling > 1 {
		return errors.Wrapf(ErrInvalidParams, "colour ceiling %v outside [0, 1]", p.ColorCeiling)
	}
	return nil
}

// InitialSpeed is the launch speed of a particle of species s.
func (p Params) InitialSpeed(s Species) float64 {
	return p.BaseVelocity * p.SpeedScale[s]
}

func (p Params) verticalLimit(b Bounds) float64 {
	if p.VerticalBound == BoundByHeight {
		return b.Height
	}
	return b.Width
}
