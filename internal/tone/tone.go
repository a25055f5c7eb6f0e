// ABOUTME: Stereo test tone generator
// ABOUTME: Generates one sine per channel as 16-bit stereo frames
package tone

import (
	"math"
)

// Source generates a sine wave on each channel of a stereo stream
type Source struct {
	rate        uint32
	left        float64
	right       float64
	amplitude   float64
	sampleIndex uint64
}

// New creates a tone source. amplitude is a fraction of full scale.
func New(rate uint32, leftHz, rightHz, amplitude float64) *Source {
	return &Source{
		rate:      rate,
		left:      leftHz,
		right:     rightHz,
		amplitude: amplitude,
	}
}

// Read fills frames with the next samples, continuing where the last call
// stopped
func (s *Source) Read(frames [][2]int16) {
	scale := math.MaxInt16 * s.amplitude

	for i := range frames {
		t := float64(s.sampleIndex+uint64(i)) / float64(s.rate)
		frames[i][0] = int16(scale * math.Sin(2*math.Pi*s.left*t))
		frames[i][1] = int16(scale * math.Sin(2*math.Pi*s.right*t))
	}

	s.sampleIndex += uint64(len(frames))
}

// Seconds renders whole seconds of the tone from the start
func (s *Source) Seconds(n int) [][2]int16 {
	frames := make([][2]int16, n*int(s.rate))
	s.sampleIndex = 0
	s.Read(frames)
	return frames
}

func (s *Source) SampleRate() uint32 { return s.rate }
