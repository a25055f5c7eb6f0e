// ABOUTME: MP3 audio decoder
// ABOUTME: Decodes MP3 streams to 16-bit stereo frames
package decode

import (
	"fmt"
	"io"

	"github.com/hajimehoshi/go-mp3"
)

// MP3Decoder decodes an MP3 stream
type MP3Decoder struct {
	decoder *mp3.Decoder
	buf     []byte
}

// NewMP3 creates a decoder reading MP3 data from r
func NewMP3(r io.Reader) (*MP3Decoder, error) {
	decoder, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create mp3 decoder: %w", err)
	}
	return &MP3Decoder{decoder: decoder}, nil
}

// SampleRate returns the rate of the MP3 stream
func (d *MP3Decoder) SampleRate() uint32 {
	return uint32(d.decoder.SampleRate())
}

// Frames returns the total number of frames, or -1 when unknown
func (d *MP3Decoder) Frames() int64 {
	n := d.decoder.Length()
	if n < 0 {
		return -1
	}
	return n / BytesPerFrame
}

// Read decodes the next frames. go-mp3 always emits 16-bit little-endian stereo.
func (d *MP3Decoder) Read(frames [][2]int16) (int, error) {
	n, buf, err := readFrames(d.decoder, d.buf, frames)
	d.buf = buf
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("mp3 decode error: %w", err)
	}
	return n, err
}
