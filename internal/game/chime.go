package game

import (
	"log"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	chimeSampleRate = beep.SampleRate(44100)
	chimeLength     = 400 * time.Millisecond
	chimeBaseFreq   = 880.0
)

// playChime plays a short sparkle on activation. The speaker is initialized
// lazily on first use; if that fails (no audio device), the animation keeps
// running silently.
func (g *Game) playChime() {
	if !g.soundInit {
		g.soundInit = true
		if err := speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/20)); err != nil {
			log.Printf("chime disabled: %v", err)
			g.soundBroken = true
		}
	}
	if g.soundBroken {
		return
	}
	speaker.Play(beep.Take(chimeSampleRate.N(chimeLength), chimeStreamer()))
}

// chimeStreamer synthesizes the sparkle: two sine partials a fifth apart
// under an exponential decay envelope.
func chimeStreamer() beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			t := float64(pos) / float64(chimeSampleRate)
			env := math.Exp(-7 * t)
			v := 0.25 * env * (math.Sin(2*math.Pi*chimeBaseFreq*t) + 0.5*math.Sin(2*math.Pi*chimeBaseFreq*1.5*t))
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
}
