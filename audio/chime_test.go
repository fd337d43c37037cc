package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestChimeStreamerLength(t *testing.T) {
	c := &Chime{rate: sampleRate, duration: chimeLen, freq: chimeFreq}

	buf := make([][2]float64, 512)
	total := 0
	s := c.streamer()
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}

	assert.Equal(t, sampleRate.N(60*time.Millisecond), total)
}

func TestChimeStreamerIsAudible(t *testing.T) {
	c := &Chime{rate: sampleRate, duration: chimeLen, freq: chimeFreq}

	buf := make([][2]float64, 256)
	n, _ := c.streamer().Stream(buf)

	peak := 0.0
	for _, frame := range buf[:n] {
		if frame[0] > peak {
			peak = frame[0]
		}
	}
	assert.Greater(t, peak, 0.5)
}
