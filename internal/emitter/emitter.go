package emitter

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Simulation constants
const (
	MinRadius   = 0.5
	MaxRadius   = 2.0
	MinSpeed    = 0.1
	MaxSpeed    = 0.5
	Gravity     = 0.003
	Drag        = 0.99
	RadiusDecay = 0.995
	CullRadius  = 0.1

	AmbientFade = 0.005
	DrainFade   = 0.01

	SpawnChance = 0.6
	BurstCount  = 80

	// Weight of the primary palette color; the remainder goes to the sparkle.
	AmbientPrimaryWeight = 0.9
	BurstPrimaryWeight   = 0.7
)

// Palette is the two colors particles are drawn in: heart pink for the body
// of the effect, pale gold for the occasional sparkle.
var Palette = [2]color.NRGBA{
	{R: 232, G: 67, B: 147, A: 255},
	{R: 255, G: 234, B: 167, A: 255},
}

// Particle is a single animated dot. Owned exclusively by the Emitter's
// collection; mutated in place once per frame until culled.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Opacity float64
	Color   color.NRGBA
	Drag    float64
	Gravity float64
}

// Emitter owns the live particle collection, the emission origin and the
// activation flag. All methods are meant to run on the game loop goroutine;
// nothing here is safe for concurrent use, and nothing needs to be.
type Emitter struct {
	particles []*Particle
	originX   float64
	originY   float64
	active    bool
	spawned   uint64
	rng       *rand.Rand
}

// New creates an Emitter. A nil rng seeds one from the clock; tests pass a
// fixed-seed source for deterministic spawns.
func New(rng *rand.Rand) *Emitter {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Emitter{rng: rng}
}

// SetOrigin moves the emission origin. Non-finite coordinates (a layout
// glitch upstream) fall back to (0, 0) rather than poisoning every spawn.
func (e *Emitter) SetOrigin(x, y float64) {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		x, y = 0, 0
	}
	e.originX = x
	e.originY = y
}

// Origin returns the current emission origin.
func (e *Emitter) Origin() (x, y float64) {
	return e.originX, e.originY
}

// Active reports whether ambient emission is running.
func (e *Emitter) Active() bool {
	return e.active
}

// Count returns the number of live particles.
func (e *Emitter) Count() int {
	return len(e.particles)
}

// Spawned returns the lifetime spawn count, bursts included.
func (e *Emitter) Spawned() uint64 {
	return e.spawned
}

// SetActive toggles ambient emission. The false->true edge spawns the
// initial burst immediately, before the next frame runs. Rapid toggling can
// therefore stack bursts; that matches the original toggle behavior.
func (e *Emitter) SetActive(active bool) {
	if active && !e.active {
		for i := 0; i < BurstCount; i++ {
			e.spawn(BurstPrimaryWeight)
		}
	}
	e.active = active
}

// spawn appends one particle at the origin with randomized size, speed and
// direction, picking its color by weighted coin flip.
func (e *Emitter) spawn(primaryWeight float64) *Particle {
	speed := MinSpeed + e.rng.Float64()*(MaxSpeed-MinSpeed)
	dir := e.rng.Float64() * 2 * math.Pi

	c := Palette[0]
	if e.rng.Float64() >= primaryWeight {
		c = Palette[1]
	}

	p := &Particle{
		X:       e.originX,
		Y:       e.originY,
		VX:      math.Cos(dir) * speed * 2,
		VY:      math.Sin(dir) * speed * 2,
		Radius:  MinRadius + e.rng.Float64()*(MaxRadius-MinRadius),
		Opacity: 1.0,
		Color:   c,
		Drag:    Drag,
		Gravity: Gravity,
	}
	e.particles = append(e.particles, p)
	e.spawned++
	return p
}

// Step advances the simulation by one frame: ambient spawn trial, then
// integrate every particle and cull the expired ones. Iterates back-to-front
// so removal never skips a live particle.
func (e *Emitter) Step() {
	if e.active && e.rng.Float64() < SpawnChance {
		e.spawn(AmbientPrimaryWeight)
	}

	fade := AmbientFade
	if !e.active {
		fade = DrainFade
	}

	for i := len(e.particles) - 1; i >= 0; i-- {
		p := e.particles[i]
		p.VX *= p.Drag
		p.VY *= p.Drag
		p.VY += p.Gravity
		p.X += p.VX
		p.Y += p.VY
		p.Opacity -= fade
		p.Radius *= RadiusDecay

		if p.Opacity <= 0 || p.Radius <= CullRadius {
			e.particles = append(e.particles[:i], e.particles[i+1:]...)
		}
	}
}

// Draw paints every live particle onto dst as a soft-glow circle: a wide
// low-alpha halo under a solid core. A malformed particle is skipped, never
// allowed to halt the loop.
func (e *Emitter) Draw(dst *ebiten.Image) {
	for _, p := range e.particles {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || p.Radius <= 0 {
			continue
		}
		a := clamp01(p.Opacity)

		halo := p.Color
		halo.A = uint8(40 * a)
		vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(p.Radius*2.5), halo, true)

		core := p.Color
		core.A = uint8(255 * a)
		vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(p.Radius), core, true)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
