// ABOUTME: Audio decoder package for file playback
// ABOUTME: Provides the Decoder interface with MP3 and raw PCM implementations
// Package decode turns encoded audio into 16-bit stereo frames ready for a
// playback stream.
//
// Example:
//
//	d, err := decode.NewMP3(f)
//	frames := make([][2]int16, 4096)
//	n, err := d.Read(frames)
package decode
