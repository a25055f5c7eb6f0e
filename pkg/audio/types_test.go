// ABOUTME: Tests for audio types
// ABOUTME: Tests frame shapes, sample specs and frame byte views
package audio

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeOf(t *testing.T) {
	tests := []struct {
		name     string
		shape    FrameShape
		channels int
		size     int
		sizeof   uintptr
	}{
		{"mono u8", ShapeOf[uint8, [1]uint8](), 1, 1, unsafe.Sizeof([1]uint8{})},
		{"stereo s16", ShapeOf[int16, [2]int16](), 2, 4, unsafe.Sizeof([2]int16{})},
		{"5.1 s32", ShapeOf[int32, [6]int32](), 6, 24, unsafe.Sizeof([6]int32{})},
		{"9ch f32", ShapeOf[float32, [9]float32](), 9, 36, unsafe.Sizeof([9]float32{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.channels, tt.shape.ChannelCount())
			assert.Equal(t, tt.size, tt.shape.SampleSize())
			assert.Equal(t, int(tt.sizeof), tt.shape.SampleSize())
		})
	}
}

func TestSampleSizeIsChannelsTimesWidth(t *testing.T) {
	for _, kind := range []SampleKind{KindU8, KindS16, KindS32, KindF32} {
		for n := 1; n <= MaxChannels; n++ {
			shape := FrameShape{Kind: kind, Channels: n}
			assert.Equal(t, n*kind.Width(), shape.SampleSize())

			spec, err := shape.Spec(48000)
			require.NoError(t, err)
			assert.Equal(t, shape.SampleSize(), spec.FrameSize())
		}
	}
}

func TestFrameShapeSpecRejectsChannels(t *testing.T) {
	for _, n := range []int{-1, 0, MaxChannels + 1} {
		_, err := FrameShape{Kind: KindS16, Channels: n}.Spec(48000)
		assert.ErrorIs(t, err, ErrInvalidChannels, "channels=%d", n)
	}
}

func TestFrameShapeSpec(t *testing.T) {
	spec, err := ShapeOf[int16, [2]int16]().Spec(48000)
	require.NoError(t, err)

	assert.Equal(t, HostFormat(KindS16), spec.Format)
	assert.Equal(t, uint8(2), spec.Channels)
	assert.Equal(t, uint32(48000), spec.Rate)
	assert.Equal(t, 4, spec.FrameSize())
	assert.Equal(t, 192000, spec.BytesPerSecond())
}

func TestFrameShapeSpecRejectsRate(t *testing.T) {
	shape := ShapeOf[uint8, [1]uint8]()

	_, err := shape.Spec(0)
	assert.ErrorIs(t, err, ErrInvalidRate)

	_, err = shape.Spec(MaxRate + 1)
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestSampleSpecValidate(t *testing.T) {
	assert.NoError(t, SampleSpec{Format: FormatU8, Channels: 1, Rate: 8000}.Validate())
	assert.Error(t, SampleSpec{Format: FormatInvalid, Channels: 1, Rate: 8000}.Validate())
	assert.ErrorIs(t, SampleSpec{Format: FormatU8, Channels: 0, Rate: 8000}.Validate(), ErrInvalidChannels)
	assert.ErrorIs(t, SampleSpec{Format: FormatU8, Channels: 33, Rate: 8000}.Validate(), ErrInvalidChannels)
}

func TestSampleSpecString(t *testing.T) {
	spec := SampleSpec{Format: FormatS16LE, Channels: 2, Rate: 44100}
	assert.Equal(t, "s16le 2ch 44100Hz", spec.String())
}

func TestFrameBytes(t *testing.T) {
	frames := [][2]int16{{1, 2}, {3, 4}, {5, 6}}
	raw := FrameBytes[int16](frames)
	require.Len(t, raw, 12)

	// the view aliases the frames
	frames[1][0] = 0x0102
	var want [2]byte
	*(*int16)(unsafe.Pointer(&want[0])) = 0x0102
	assert.Equal(t, want[:], raw[4:6])

	assert.Nil(t, FrameBytes[uint8]([][1]uint8{}))
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "playback", Playback.String())
	assert.Equal(t, "record", Record.String())
	assert.Equal(t, "Direction(7)", Direction(7).String())
}
