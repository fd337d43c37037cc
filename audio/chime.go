// Package audio plays the short tone that marks a food pickup.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	chimeFreq  = 880
	chimeLen   = 60 * time.Millisecond
)

// Chime plays a sine blip through the system speaker.
type Chime struct {
	rate     beep.SampleRate
	duration time.Duration
	freq     float64
}

// NewChime initializes the speaker. The caller decides whether a failure is fatal.
func NewChime() (*Chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Chime{rate: sampleRate, duration: chimeLen, freq: chimeFreq}, nil
}

// Play queues the tone without blocking the caller.
func (c *Chime) Play() {
	speaker.Play(c.streamer())
}

func (c *Chime) streamer() beep.Streamer {
	sine, err := generators.SineTone(c.rate, c.freq)
	if err != nil {
		return beep.Silence(0)
	}
	return beep.Take(c.rate.N(c.duration), sine)
}

func (c *Chime) Close() {
	speaker.Close()
}
