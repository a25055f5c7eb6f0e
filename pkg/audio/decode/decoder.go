// ABOUTME: Decoder interface definition
// ABOUTME: Common interface for sources of 16-bit stereo frames
package decode

import (
	"encoding/binary"
	"io"
)

// BytesPerFrame is the size of one interleaved 16-bit stereo frame
const BytesPerFrame = 4

// Decoder produces 16-bit stereo frames
type Decoder interface {
	// SampleRate is the rate of the decoded frames
	SampleRate() uint32

	// Read fills frames and returns how many were decoded. It returns
	// io.EOF once the input is exhausted.
	Read(frames [][2]int16) (int, error)
}

// readFrames reads little-endian interleaved samples from r into frames.
// A trailing partial frame is dropped.
func readFrames(r io.Reader, buf []byte, frames [][2]int16) (int, []byte, error) {
	need := len(frames) * BytesPerFrame
	if cap(buf) < need {
		buf = make([]byte, need)
	}
	buf = buf[:need]

	n, err := io.ReadFull(r, buf)
	if err == io.ErrUnexpectedEOF {
		err = nil
	}

	count := n / BytesPerFrame
	for i := 0; i < count; i++ {
		frames[i][0] = int16(binary.LittleEndian.Uint16(buf[i*4:]))
		frames[i][1] = int16(binary.LittleEndian.Uint16(buf[i*4+2:]))
	}

	if count == 0 && err == nil {
		err = io.EOF
	}
	return count, buf, err
}
