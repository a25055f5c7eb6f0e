// ABOUTME: Audio type definitions
// ABOUTME: Defines frame shapes, stream directions and sample specs
package audio

import (
	"errors"
	"fmt"
	"unsafe"
)

const (
	// MaxChannels is the largest channel count the server accepts
	MaxChannels = 32

	// MaxRate is the highest sample rate the server accepts (Hz)
	MaxRate = 384000
)

var (
	ErrInvalidChannels = errors.New("channel count out of range")
	ErrInvalidRate     = errors.New("sample rate out of range")
)

// Direction selects playback or capture. Values follow pa_stream_direction_t.
type Direction int

const (
	Playback Direction = 1
	Record   Direction = 2
)

func (d Direction) String() string {
	switch d {
	case Playback:
		return "playback"
	case Record:
		return "record"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Frame is one interleaved sample per channel for a single instant.
// The union covers 1 to 9 channels.
type Frame[S Sample] interface {
	~[1]S | ~[2]S | ~[3]S | ~[4]S | ~[5]S | ~[6]S | ~[7]S | ~[8]S | ~[9]S
}

// FrameShape is the byte layout of a frame
type FrameShape struct {
	Kind     SampleKind
	Channels int
}

// ShapeOf derives the shape of frame type F
func ShapeOf[S Sample, F Frame[S]]() FrameShape {
	var f F
	return FrameShape{Kind: KindOf[S](), Channels: len(f)}
}

// ChannelCount returns the number of channels per frame
func (s FrameShape) ChannelCount() int {
	return s.Channels
}

// SampleSize returns the size of one frame in bytes
func (s FrameShape) SampleSize() int {
	return s.Channels * s.Kind.Width()
}

// Spec builds the sample spec for this shape at the given rate, in host byte order
func (s FrameShape) Spec(rate uint32) (SampleSpec, error) {
	if s.Channels < 1 || s.Channels > MaxChannels {
		return SampleSpec{}, fmt.Errorf("%w: %d (supported: 1-%d)", ErrInvalidChannels, s.Channels, MaxChannels)
	}
	spec := SampleSpec{
		Format:   HostFormat(s.Kind),
		Channels: uint8(s.Channels),
		Rate:     rate,
	}
	if err := spec.Validate(); err != nil {
		return SampleSpec{}, err
	}
	return spec, nil
}

// SampleSpec is the format, channel count and rate negotiated at open time
type SampleSpec struct {
	Format   FormatTag
	Channels uint8
	Rate     uint32
}

// Validate checks the spec against the server limits
func (s SampleSpec) Validate() error {
	if s.Format.SampleWidth() == 0 {
		return fmt.Errorf("invalid sample format: %d", int(s.Format))
	}
	if s.Channels < 1 || int(s.Channels) > MaxChannels {
		return fmt.Errorf("%w: %d (supported: 1-%d)", ErrInvalidChannels, s.Channels, MaxChannels)
	}
	if s.Rate < 1 || s.Rate > MaxRate {
		return fmt.Errorf("%w: %d Hz (supported: 1-%d)", ErrInvalidRate, s.Rate, MaxRate)
	}
	return nil
}

// FrameSize returns the size of one frame in bytes
func (s SampleSpec) FrameSize() int {
	return int(s.Channels) * s.Format.SampleWidth()
}

// BytesPerSecond returns the data rate of the spec
func (s SampleSpec) BytesPerSecond() int {
	return s.FrameSize() * int(s.Rate)
}

func (s SampleSpec) String() string {
	return fmt.Sprintf("%s %dch %dHz", s.Format, s.Channels, s.Rate)
}

// FrameBytes reinterprets frames as their raw bytes in host byte order.
// The result aliases the frames' memory.
func FrameBytes[S Sample, F Frame[S]](frames []F) []byte {
	if len(frames) == 0 {
		return nil
	}
	size := int(unsafe.Sizeof(frames[0]))
	return unsafe.Slice((*byte)(unsafe.Pointer(&frames[0])), len(frames)*size)
}
