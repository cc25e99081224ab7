package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"

	"github.com/iburimskiy/volcano-plume/internal/config"
	"github.com/iburimskiy/volcano-plume/internal/game"
)

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TicksPerSecond)

	g, err := game.New()
	if err != nil {
		fatal(err)
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(err)
	}
}

// fatal reports err in a native dialog as well as the log, then exits.
func fatal(err error) {
	if dlgErr := zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon); dlgErr != nil {
		log.Printf("error dialog: %v", dlgErr)
	}
	log.Fatal(err)
}
