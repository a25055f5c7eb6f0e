// ABOUTME: Audio fundamentals package providing sample and frame types
// ABOUTME: Defines sample kinds, format tags, frame shapes and sample specs
// Package audio provides the typed building blocks of a PCM stream.
//
// This package defines:
//   - Sample: the closed set of element types (uint8, int16, int32, float32)
//   - FormatTag: the wire encoding sent to the audio server
//   - Frame and FrameShape: interleaved frames of 1 to 9 channels
//   - SampleSpec: the format, channel count and rate negotiated at open time
//
// Multi-byte encodings always resolve to the host's byte order, since frames
// are handed to the server as they sit in memory.
//
// Example:
//
//	shape := audio.ShapeOf[int16, [2]int16]()
//	spec, err := shape.Spec(48000) // s16le 2ch 48000Hz on little-endian hosts
//	frameBytes := shape.SampleSize() // 4
package audio
