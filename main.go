package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/heart-burst/internal/config"
	"github.com/iburimskiy/heart-burst/internal/game"
)

func main() {
	if err := config.Validate(); err != nil {
		fatal(err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Heart Burst - click the button, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(err)
	}
}

// fatal surfaces a startup error in a dialog before exiting; the animation
// cannot run without a valid surface and anchor.
func fatal(err error) {
	_ = zenity.Error(err.Error(), zenity.Title("Heart Burst"))
	log.Fatal(err)
}
