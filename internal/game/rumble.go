package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"

	"github.com/iburimskiy/volcano-plume/internal/config"
)

// rumble is a beep.Streamer producing brown noise whose loudness follows the
// eruption's particle load. The game loop sets the intensity while the
// speaker goroutine streams.
type rumble struct {
	mu        sync.Mutex
	intensity float64
	level     float64
	rng       *rand.Rand
}

func newRumble(seed int64) *rumble {
	return &rumble{rng: rand.New(rand.NewSource(seed))}
}

func (r *rumble) Stream(samples [][2]float64) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range samples {
		// Leaky integration of white noise
		r.level = r.level*0.995 + (r.rng.Float64()*2-1)*0.05
		if r.level > 1 {
			r.level = 1
		} else if r.level < -1 {
			r.level = -1
		}
		v := r.level * r.intensity
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (r *rumble) Err() error { return nil }

// SetIntensity sets the loudness, clamped to [0, 1].
func (r *rumble) SetIntensity(v float64) {
	r.mu.Lock()
	r.intensity = clamp01(v)
	r.mu.Unlock()
}

func (r *rumble) Intensity() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.intensity
}

// start opens the speaker and plays the rumble until the process exits.
func (r *rumble) start(sr beep.SampleRate) error {
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	speaker.Play(&effects.Volume{
		Streamer: r,
		Base:     2,
		Volume:   config.RumbleVolume,
	})
	return nil
}
