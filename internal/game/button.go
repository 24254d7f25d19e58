package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/heart-burst/internal/config"
)

// buttonRect centers the anchor button horizontally near the bottom edge of
// a width x height surface, scaled for the device.
func buttonRect(width, height int, scale float64) image.Rectangle {
	bw := int(config.ButtonWidth * scale)
	bh := int(config.ButtonHeight * scale)
	margin := int(config.ButtonMargin * scale)
	x := (width - bw) / 2
	y := height - margin - bh
	return image.Rect(x, y, x+bw, y+bh)
}

// anchorCenter is the emission origin: the midpoint of the anchor rect.
func anchorCenter(r image.Rectangle) (float64, float64) {
	return float64(r.Min.X) + float64(r.Dx())/2, float64(r.Min.Y) + float64(r.Dy())/2
}

func (g *Game) drawButton(screen *ebiten.Image) {
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.NRGBA{R: 120, G: 40, B: 80, A: 255} // Pressed
	} else if g.buttonHovered {
		bgColor = color.NRGBA{R: 170, G: 55, B: 110, A: 255} // Hovered
	} else {
		bgColor = color.NRGBA{R: 145, G: 45, B: 95, A: 255} // Normal
	}

	b := g.button
	vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), bgColor, false)

	borderColor := color.NRGBA{R: 232, G: 130, B: 175, A: 255}
	vector.StrokeRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), 2, borderColor, false)

	text := config.LabelIdle
	if g.emitter.Active() {
		text = config.LabelActive
	}
	textWidth := len(text) * 8 // Approximate character width
	textX := b.Min.X + (b.Dx()-textWidth)/2
	textY := b.Min.Y + (b.Dy()-8)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}
