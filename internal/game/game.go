package game

import (
	"fmt"
	"log"
	"time"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/iburimskiy/volcano-plume/internal/config"
	"github.com/iburimskiy/volcano-plume/internal/eruption"
)

// Game implements ebiten.Game for the eruption demo.
type Game struct {
	system     *eruption.System
	background *ebiten.Image
	legend     *legend
	rumble     *rumble

	ticks int
}

// New loads the background and sets up the eruption over it.
func New() (*Game, error) {
	bg, err := loadBackground(config.BackgroundPath, config.WindowWidth, config.WindowHeight, config.IoSurfaceY, config.BackgroundSeed)
	if err != nil {
		return nil, err
	}

	bounds := eruption.Bounds{Width: config.WindowWidth, Height: config.WindowHeight}
	sys, err := eruption.NewSystem(eruption.DefaultParams(), bounds, surface{img: bg}, eruption.NewRandomSource(time.Now().UnixNano()))
	if err != nil {
		return nil, errors.Wrap(err, "create eruption")
	}

	g := &Game{
		system:     sys,
		background: bg,
		legend:     newLegend(),
	}

	if config.AudioEnabled {
		r := newRumble(time.Now().UnixNano())
		if err := r.start(beep.SampleRate(config.AudioSampleRate)); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		} else {
			g.rumble = r
		}
	}

	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if err := g.system.Tick(); err != nil {
		return err
	}
	g.ticks++

	if g.rumble != nil {
		g.rumble.SetIntensity(float64(g.system.Len()) / config.RumbleFullLoad)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.background, nil)
	g.legend.Draw(screen)
	g.system.Render(surface{img: screen})

	if config.ShowStatus {
		ebitenutil.DebugPrintAt(screen, g.status(), 12, config.WindowHeight-20)
	}
}

func (g *Game) status() string {
	return fmt.Sprintf("Particles: %d  Elapsed: %s  Esc/Q: Quit", g.system.Len(), formatDuration(g.elapsed()))
}

// elapsed is simulated time, one tick per frame.
func (g *Game) elapsed() time.Duration {
	return time.Duration(g.ticks) * time.Second / config.TicksPerSecond
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
