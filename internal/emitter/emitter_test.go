package emitter

import (
	"math"
	"math/rand"
	"testing"
)

func newTestEmitter(seed int64) *Emitter {
	return New(rand.New(rand.NewSource(seed)))
}

func TestSpawnRanges(t *testing.T) {
	e := newTestEmitter(1)
	e.SetOrigin(33, 44)

	for i := 0; i < 1000; i++ {
		p := e.spawn(AmbientPrimaryWeight)
		if p.X != 33 || p.Y != 44 {
			t.Fatalf("particle spawned at (%v, %v), want origin (33, 44)", p.X, p.Y)
		}
		if p.Radius < MinRadius || p.Radius > MaxRadius {
			t.Fatalf("radius %v outside [%v, %v]", p.Radius, MinRadius, MaxRadius)
		}
		if p.Opacity != 1.0 {
			t.Fatalf("initial opacity %v, want 1.0", p.Opacity)
		}
		// velocity magnitude is speed*2, speed in [MinSpeed, MaxSpeed]
		v := math.Hypot(p.VX, p.VY)
		if v < MinSpeed*2-1e-9 || v > MaxSpeed*2+1e-9 {
			t.Fatalf("velocity magnitude %v outside [%v, %v]", v, MinSpeed*2, MaxSpeed*2)
		}
		if p.Drag != Drag || p.Gravity != Gravity {
			t.Fatalf("drag/gravity (%v, %v), want (%v, %v)", p.Drag, p.Gravity, Drag, Gravity)
		}
		if p.Color != Palette[0] && p.Color != Palette[1] {
			t.Fatalf("color %v not in palette", p.Color)
		}
	}
}

func TestPaletteWeighting(t *testing.T) {
	e := newTestEmitter(2)

	primary := 0
	const n = 10000
	for i := 0; i < n; i++ {
		if e.spawn(AmbientPrimaryWeight).Color == Palette[0] {
			primary++
		}
	}
	// 90/10 split, generous tolerance
	if primary < 8700 || primary > 9300 {
		t.Fatalf("primary color picked %d/%d times, want ~9000", primary, n)
	}
}

func TestBurstOnActivationEdge(t *testing.T) {
	e := newTestEmitter(3)

	e.SetActive(true)
	if got := e.Count(); got != BurstCount {
		t.Fatalf("burst spawned %d particles, want %d", got, BurstCount)
	}

	// No edge, no burst.
	e.SetActive(true)
	if got := e.Count(); got != BurstCount {
		t.Fatalf("repeated SetActive(true) grew collection to %d", got)
	}

	// Each rising edge bursts again; bursts stack.
	e.SetActive(false)
	e.SetActive(true)
	if got := e.Count(); got != 2*BurstCount {
		t.Fatalf("second rising edge gave %d particles, want %d", got, 2*BurstCount)
	}
}

func TestStepMonotonicFade(t *testing.T) {
	e := newTestEmitter(4)
	e.SetActive(true)

	tracked := make([]*Particle, e.Count())
	copy(tracked, e.particles)
	prevR := make([]float64, len(tracked))
	prevO := make([]float64, len(tracked))
	for i, p := range tracked {
		prevR[i] = p.Radius
		prevO[i] = p.Opacity
	}
	e.SetActive(false) // no new spawns interfering

	for step := 0; step < 120; step++ {
		e.Step()
		for i, p := range tracked {
			if p.Radius > prevR[i] {
				t.Fatalf("step %d: radius grew from %v to %v", step, prevR[i], p.Radius)
			}
			if p.Opacity > prevO[i] {
				t.Fatalf("step %d: opacity grew from %v to %v", step, prevO[i], p.Opacity)
			}
			prevR[i] = p.Radius
			prevO[i] = p.Opacity
		}
	}
}

func TestLivenessInvariantAfterStep(t *testing.T) {
	e := newTestEmitter(5)
	e.SetActive(true)

	for step := 0; step < 500; step++ {
		e.Step()
		for _, p := range e.particles {
			if p.Opacity <= 0 || p.Radius <= CullRadius {
				t.Fatalf("step %d: retained dead particle opacity=%v radius=%v", step, p.Opacity, p.Radius)
			}
		}
	}
}

func TestDrainEmptiesCollection(t *testing.T) {
	e := newTestEmitter(6)
	for i := 0; i < 1000; i++ {
		e.spawn(AmbientPrimaryWeight)
	}

	// Inactive fade is 0.01/frame from opacity 1.0, so everything must be
	// gone within 100 steps; 150 is the leak bound.
	prev := e.Count()
	for step := 0; step < 150; step++ {
		e.Step()
		if e.Count() > prev {
			t.Fatalf("step %d: count grew from %d to %d while inactive", step, prev, e.Count())
		}
		prev = e.Count()
	}
	if e.Count() != 0 {
		t.Fatalf("%d particles left after 150 inactive steps, want 0", e.Count())
	}

	// And it stays empty.
	for step := 0; step < 10; step++ {
		e.Step()
	}
	if e.Count() != 0 {
		t.Fatalf("collection refilled to %d while inactive", e.Count())
	}
}

func TestAmbientSpawnRate(t *testing.T) {
	e := newTestEmitter(7)
	e.SetActive(true)
	base := e.Spawned()

	const frames = 10000
	for i := 0; i < frames; i++ {
		e.Step()
	}

	spawned := int(e.Spawned() - base)
	// Bernoulli p=0.6 per frame; [5700, 6300] is a ~6-sigma band.
	if spawned < 5700 || spawned > 6300 {
		t.Fatalf("spawned %d particles over %d frames, want within [5700, 6300]", spawned, frames)
	}
}

func TestSetOriginRejectsNonFinite(t *testing.T) {
	e := newTestEmitter(8)
	e.SetOrigin(120, 70)

	e.SetOrigin(math.NaN(), 70)
	if x, y := e.Origin(); x != 0 || y != 0 {
		t.Fatalf("NaN origin accepted: (%v, %v)", x, y)
	}

	e.SetOrigin(120, math.Inf(1))
	if x, y := e.Origin(); x != 0 || y != 0 {
		t.Fatalf("Inf origin accepted: (%v, %v)", x, y)
	}

	e.SetOrigin(120, 70)
	if x, y := e.Origin(); x != 120 || y != 70 {
		t.Fatalf("finite origin mangled: (%v, %v)", x, y)
	}
}
