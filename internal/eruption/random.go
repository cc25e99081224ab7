package eruption

import "math/rand"

// RandomSource supplies the random draws a particle needs at launch.
type RandomSource interface {
	// Uniform returns a float in [lo, hi).
	Uniform(lo, hi float64) float64
	// Choose returns an index in [0, n).
	Choose(n int) int
}

type mathRandSource struct {
	r *rand.Rand
}

// NewRandomSource returns a RandomSource backed by math/rand.
func NewRandomSource(seed int64) RandomSource {
	return &mathRandSource{r: rand.New(rand.NewSource(seed))}
}

func (m *mathRandSource) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*m.r.Float64()
}

func (m *mathRandSource) Choose(n int) int {
	return m.r.Intn(n)
}
