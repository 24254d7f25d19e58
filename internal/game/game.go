package game

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/heart-burst/internal/config"
	"github.com/iburimskiy/heart-burst/internal/emitter"
)

var backgroundColor = color.NRGBA{R: 24, G: 16, B: 28, A: 255}

// Game drives the render loop: ebiten calls Update/Draw once per tick/frame,
// the emitter does the simulation, and an offscreen canvas keeps the fading
// trails between frames.
type Game struct {
	emitter *emitter.Emitter

	// surface
	canvas *ebiten.Image
	width  int
	height int
	scale  float64

	// anchor button
	button        image.Rectangle
	buttonHovered bool
	buttonPressed bool

	// sound
	soundInit   bool
	soundBroken bool

	quit bool
}

func New() *Game {
	return &Game{
		emitter: emitter.New(nil),
		scale:   1,
	}
}

// Stop makes the next Update return ebiten.Termination, shutting the loop
// down at a frame boundary.
func (g *Game) Stop() {
	g.quit = true
}

func (g *Game) Update() error {
	if g.quit || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	// Button interactions
	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = image.Pt(mouseX, mouseY).In(g.button)

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			g.toggle()
		}
		g.buttonPressed = false
	}

	g.emitter.Step()
	return nil
}

// toggle flips the activation state. The rising edge also plays the chime;
// the emitter handles the burst itself.
func (g *Game) toggle() {
	active := !g.emitter.Active()
	g.emitter.SetActive(active)
	if active {
		g.playChime()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	if g.canvas == nil || g.canvas.Bounds().Dx() != w || g.canvas.Bounds().Dy() != h {
		g.canvas = ebiten.NewImage(w, h)
		g.canvas.Fill(backgroundColor)
	}

	// Wash the canvas with a low-alpha coat of the background instead of a
	// hard clear, so last frame's particles linger as fading trails.
	wash := backgroundColor
	wash.A = config.TrailAlpha
	vector.DrawFilledRect(g.canvas, 0, 0, float32(w), float32(h), wash, false)

	g.emitter.Draw(g.canvas)
	screen.DrawImage(g.canvas, nil)

	g.drawButton(screen)

	status := "Click the button to spread some love"
	if g.emitter.Active() {
		status = fmt.Sprintf("Sparkling - %d live, %d spawned", g.emitter.Count(), g.emitter.Spawned())
	} else if g.emitter.Count() > 0 {
		status = fmt.Sprintf("Winding down - %d left", g.emitter.Count())
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// Layout converts the outside (window) size to surface pixels using the
// monitor's device scale factor, so circles stay crisp on high-density
// displays, and repositions the anchor on any change.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	w := int(math.Ceil(float64(outsideWidth) * scale))
	h := int(math.Ceil(float64(outsideHeight) * scale))
	g.handleResize(w, h, scale)
	return w, h
}

// handleResize recomputes the anchor button rect and the emission origin for
// a new surface size. Called every frame by Layout; cheap no-op when nothing
// changed.
func (g *Game) handleResize(width, height int, scale float64) {
	if width == g.width && height == g.height && scale == g.scale {
		return
	}
	g.width = width
	g.height = height
	g.scale = scale
	g.button = buttonRect(width, height, scale)
	x, y := anchorCenter(g.button)
	g.emitter.SetOrigin(x, y)
}
