// ABOUTME: Raw PCM audio decoder
// ABOUTME: Reads headerless s16le stereo data
package decode

import (
	"fmt"
	"io"
)

// PCMDecoder reads raw interleaved s16le stereo frames
type PCMDecoder struct {
	r    io.Reader
	rate uint32
	buf  []byte
}

// NewPCM creates a decoder for raw data at the given rate
func NewPCM(r io.Reader, rate uint32) (*PCMDecoder, error) {
	if rate == 0 {
		return nil, fmt.Errorf("invalid sample rate for PCM decoder: %d", rate)
	}
	return &PCMDecoder{r: r, rate: rate}, nil
}

// SampleRate returns the configured rate
func (d *PCMDecoder) SampleRate() uint32 {
	return d.rate
}

// Read fills frames from the underlying reader
func (d *PCMDecoder) Read(frames [][2]int16) (int, error) {
	n, buf, err := readFrames(d.r, d.buf, frames)
	d.buf = buf
	return n, err
}
