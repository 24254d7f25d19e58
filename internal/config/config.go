package config

import "fmt"

const (
	WindowWidth  = 640
	WindowHeight = 480

	// Button dimensions (logical pixels, before device scaling)
	ButtonWidth  = 160
	ButtonHeight = 44
	ButtonMargin = 36 // distance from button bottom edge to window bottom

	// Trail effect: per-frame background overlay alpha (0..255)
	TrailAlpha = 13 // ~0.05

	// Button labels
	LabelIdle   = "Spread the love"
	LabelActive = "Enough love"
)

// Validate rejects geometry the animation cannot run with. The window must
// be able to host the anchor button; without it there is no emission origin.
func Validate() error {
	if ButtonWidth > WindowWidth || ButtonHeight+ButtonMargin > WindowHeight {
		return fmt.Errorf("config: button %dx%d does not fit in window %dx%d",
			ButtonWidth, ButtonHeight, WindowWidth, WindowHeight)
	}
	return nil
}
