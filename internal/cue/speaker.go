package cue

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// note is one tone of a cue.
type note struct {
	freq float64
	dur  time.Duration
}

var melodies = map[Cue][]note{
	FoodEaten: {{660, 40 * time.Millisecond}, {990, 60 * time.Millisecond}},
	GameOver:  {{440, 120 * time.Millisecond}, {330, 120 * time.Millisecond}, {220, 240 * time.Millisecond}},
}

// Speaker synthesises cues on the default audio device.
type Speaker struct {
	mu     sync.Mutex
	volume float64
	closed bool
}

// NewSpeaker opens the audio device. Volume ranges from 0 (silent) to 1.
func NewSpeaker(volume float64) (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("cue: cannot open audio device: %w", err)
	}
	return &Speaker{volume: volume}, nil
}

// Play queues the cue's tones and returns immediately.
func (s *Speaker) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	st, err := Streamer(c, s.volume)
	if err != nil || st == nil {
		return
	}
	speaker.Play(st)
}

// Close releases the audio device. Further cues are dropped.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	speaker.Close()
	return nil
}

// Streamer builds the finite sample stream for a cue, or nil for an unknown
// cue.
func Streamer(c Cue, volume float64) (beep.Streamer, error) {
	notes, ok := melodies[c]
	if !ok {
		return nil, nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("cue: cannot build %s tone: %w", c, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), tone))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

// withVolume maps a linear volume onto the logarithmic effects.Volume.
// Zero and below are silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
