package eruption

import "github.com/pkg/errors"

// System owns the live particles of one eruption.
type System struct {
	params    Params
	bounds    Bounds
	target    TrailTarget
	rng       RandomSource
	particles []*Particle
}

// NewSystem creates an empty eruption. Trails are burned into target and
// particles are culled against bounds.
func NewSystem(params Params, bounds Bounds, target TrailTarget, rng RandomSource) (*System, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if target == nil {
		return nil, errors.New("eruption needs a trail target")
	}
	if rng == nil {
		return nil, errors.New("eruption needs a random source")
	}
	return &System{
		params: params,
		bounds: bounds,
		target: target,
		rng:    rng,
	}, nil
}

// Spawn launches count new particles from the vent.
func (s *System) Spawn(count int) error {
	if count < 0 {
		return errors.Errorf("cannot spawn %d particles", count)
	}
	for i := 0; i < count; i++ {
		p, err := NewParticle(&s.params, s.target, s.bounds, s.params.Lifespan, s.rng)
		if err != nil {
			return errors.Wrap(err, "spawn")
		}
		s.particles = append(s.particles, p)
	}
	return nil
}

// Tick runs one frame: spawn, update every particle, then drop the dead.
func (s *System) Tick() error {
	if err := s.Spawn(s.params.SpawnPerTick); err != nil {
		return err
	}

	for _, p := range s.particles {
		p.Update()
	}

	live := s.particles[:0]
	for _, p := range s.particles {
		if !p.Dead() {
			live = append(live, p)
		}
	}
	for i := len(live); i < len(s.particles); i++ {
		s.particles[i] = nil
	}
	s.particles = live
	return nil
}

// Render draws a marker for every live particle onto dst.
func (s *System) Render(dst MarkerTarget) {
	size := s.params.MarkerSize
	if size <= 0 {
		return
	}
	for _, p := range s.particles {
		pos := p.Position()
		dst.FillRect(pos.X-size/2, pos.Y-size/2, size, size, p.Color())
	}
}

// Len returns the number of live particles.
func (s *System) Len() int {
	return len(s.particles)
}

// Particles returns a snapshot of the live particles.
func (s *System) Particles() []*Particle {
	out := make([]*Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

func (s *System) Params() Params { return s.params }
func (s *System) Bounds() Bounds { return s.bounds }
