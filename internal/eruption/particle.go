package eruption

import (
	"image/color"
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidLifespan is returned when a particle would be born already dead.
var ErrInvalidLifespan = errors.New("particle lifespan must be positive")

// TrailSegment records one step of a particle's flight.
type TrailSegment struct {
	Start, End Vec
	Lifespan   int
}

// Particle is a single unit of ejecta.
type Particle struct {
	params *Params
	target TrailTarget
	bounds Bounds

	species      Species
	pos          Vec
	vel          Vec
	speedScale   float64
	initialSpeed float64
	lifespan     int
	color        color.RGBA
	trail        []TrailSegment
	dead         bool
}

// NewParticle launches a particle from the vent. Its trail is burned into
// target as it moves.
func NewParticle(params *Params, target TrailTarget, bounds Bounds, lifespan int, rng RandomSource) (*Particle, error) {
	if lifespan <= 0 {
		return nil, errors.Wrapf(ErrInvalidLifespan, "lifespan %d", lifespan)
	}
	if params == nil || target == nil || rng == nil {
		return nil, errors.New("particle needs params, a trail target and a random source")
	}

	pick := rng.Choose(speciesCount)
	if pick < 0 || pick >= speciesCount {
		return nil, errors.Errorf("random source picked species %d out of %d", pick, speciesCount)
	}
	species := Species(pick)
	p := &Particle{
		params:       params,
		target:       target,
		bounds:       bounds,
		species:      species,
		pos:          params.Vent,
		speedScale:   params.SpeedScale[species],
		initialSpeed: params.InitialSpeed(species),
		lifespan:     lifespan,
	}

	// The raw launch speed is far above the ceiling, so every particle starts
	// out at the ceiling colour. A normalised launch speed of 1 clamps to the
	// same value.
	p.color = InterpolateCeiling(params.Warm, params.Hot, p.initialSpeed, params.ColorCeiling)

	p.launch(rng.Uniform(params.MinAngle, params.MaxAngle))
	return p, nil
}

// launch sets the velocity for an angle in degrees, 90 being straight up.
func (p *Particle) launch(degrees float64) {
	rad := degrees * math.Pi / 180
	p.vel = Vec{
		X: p.initialSpeed * math.Cos(rad),
		Y: -p.initialSpeed * math.Sin(rad),
	}
}

// Update advances the particle by one frame. A particle that dies on this
// frame keeps the colour it had before the step.
func (p *Particle) Update() {
	if p.dead {
		return
	}

	p.vel.Y += p.params.Gravity

	next := p.pos.Add(p.vel)
	p.target.DrawLine(p.pos.X, p.pos.Y, next.X, next.Y, p.color)
	p.trail = append(p.trail, TrailSegment{Start: p.pos, End: next, Lifespan: p.lifespan})
	p.pos = next

	p.lifespan--
	if p.lifespan <= 0 {
		p.dead = true
		return
	}

	if p.outOfBounds() {
		p.dead = true
		return
	}

	normalized := clamp(p.vel.Len()/p.initialSpeed, 0, 1)
	p.color = InterpolateCeiling(p.params.Warm, p.params.Hot, normalized, p.params.ColorCeiling)
}

func (p *Particle) outOfBounds() bool {
	if p.pos.X < 0 || p.pos.X > p.bounds.Width {
		return true
	}
	limit := p.params.verticalLimit(p.bounds)
	return p.pos.Y < 0 || p.pos.Y > limit
}

func (p *Particle) Species() Species { return p.species }
func (p *Particle) Position() Vec { return p.pos }
func (p *Particle) Velocity() Vec { return p.vel }
func (p *Particle) SpeedScale() float64 { return p.speedScale }
func (p *Particle) InitialSpeed() float64 { return p.initialSpeed }
func (p *Particle) Lifespan() int { return p.lifespan }
func (p *Particle) Color() color.RGBA { return p.color }
func (p *Particle) Dead() bool { return p.dead }

// Trail returns a copy of the recorded flight segments.
func (p *Particle) Trail() []TrailSegment {
	out := make([]TrailSegment, len(p.trail))
	copy(out, p.trail)
	return out
}
