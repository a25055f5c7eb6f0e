// ABOUTME: Tests for the tone generator
// ABOUTME: Checks sample values and phase continuity
package tone

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecondsLength(t *testing.T) {
	s := New(48000, 440, 330, 1)
	frames := s.Seconds(1)
	assert.Len(t, frames, 48000)
	assert.Equal(t, uint32(48000), s.SampleRate())
}

func TestFirstFrameIsSilent(t *testing.T) {
	frames := New(48000, 440, 330, 1).Seconds(1)
	assert.Equal(t, [2]int16{0, 0}, frames[0])
}

func TestQuarterPeriodPeaks(t *testing.T) {
	// 1 kHz at 8 kHz peaks every 8 samples starting at sample 2
	frames := New(8000, 1000, 2000, 1).Seconds(1)

	assert.InDelta(t, math.MaxInt16, frames[2][0], 1)
	assert.InDelta(t, math.MaxInt16, frames[1][1], 1)
	assert.InDelta(t, -math.MaxInt16, frames[6][0], 1)
	assert.InDelta(t, 0, frames[4][0], 1)
}

func TestAmplitudeScales(t *testing.T) {
	frames := New(8000, 1000, 1000, 0.5).Seconds(1)
	assert.InDelta(t, math.MaxInt16*0.5, frames[2][0], 1)
}

func TestReadContinuesPhase(t *testing.T) {
	whole := New(48000, 440, 330, 1).Seconds(1)

	s := New(48000, 440, 330, 1)
	first := make([][2]int16, 1000)
	second := make([][2]int16, 1000)
	s.Read(first)
	s.Read(second)

	require.Equal(t, whole[:1000], first)
	assert.Equal(t, whole[1000:2000], second)
}
