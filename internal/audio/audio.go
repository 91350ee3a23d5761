// Package audio plays short synthesized cues for drawing feedback.
package audio

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"CompareBoard/internal/config"
)

const sampleRate = beep.SampleRate(44100)

// Player gives audible feedback for engine events.
type Player interface {
	Matched()
	Discarded()
	Settled()
	Close()
}

// Nop is a Player that stays silent.
type Nop struct{}

func (Nop) Matched()   {}
func (Nop) Discarded() {}
func (Nop) Settled()   {}
func (Nop) Close()     {}

// Speaker plays cues through the default output device.
type Speaker struct {
	mu     sync.Mutex
	volume float64
	mixer  *beep.Mixer
	closed bool
}

// New opens the speaker when audio is enabled. Any failure falls back to a silent player.
func New(cfg config.Audio) Player {
	if !cfg.Enabled || cfg.Volume <= 0 {
		return Nop{}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		log.Printf("[AUDIO] Speaker unavailable, continuing without sound: %v", err)
		return Nop{}
	}
	s := &Speaker{volume: math.Min(cfg.Volume, 1), mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	log.Printf("[AUDIO] Speaker ready at %d Hz", sampleRate)
	return s
}

func (s *Speaker) play(st beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(withVolume(st, s.volume))
	speaker.Unlock()
}

// Matched is a rising two-note chime.
func (s *Speaker) Matched() {
	s.play(beep.Seq(
		Tone(659.25, 90*time.Millisecond),
		Tone(880, 140*time.Millisecond),
	))
}

// Discarded is a short low blip.
func (s *Speaker) Discarded() {
	s.play(Tone(196, 120*time.Millisecond))
}

// Settled is a major triad played once the glyph has formed.
func (s *Speaker) Settled() {
	d := 400 * time.Millisecond
	s.play(beep.Mix(Tone(523.25, d), Tone(659.25, d), Tone(783.99, d)))
}

func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
}

func withVolume(st beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: st, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: st, Base: 2, Volume: math.Log2(vol)}
}

// tone is a sine wave with a linear attack and release.
type tone struct {
	freq    float64
	phase   float64
	pos     int
	total   int
	attack  int
	release int
}

// Tone returns a sine streamer of the given frequency and length.
func Tone(freq float64, d time.Duration) beep.Streamer {
	total := sampleRate.N(d)
	return &tone{
		freq:    freq,
		total:   total,
		attack:  total / 10,
		release: total / 3,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		v := math.Sin(2*math.Pi*t.phase) * t.envelope()
		samples[i][0], samples[i][1] = v, v

		t.phase += t.freq / float64(sampleRate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) envelope() float64 {
	switch {
	case t.attack > 0 && t.pos < t.attack:
		return float64(t.pos) / float64(t.attack)
	case t.release > 0 && t.pos >= t.total-t.release:
		return float64(t.total-t.pos) / float64(t.release)
	}
	return 1
}

func (t *tone) Err() error { return nil }
