// ABOUTME: Audio resampling package using linear interpolation
// ABOUTME: Converts 16-bit stereo frames between sample rates
// Package resample provides audio sample rate conversion.
//
// Uses linear interpolation for converting between sample rates.
// Handles both upsampling and downsampling.
//
// Example:
//
//	r := resample.New(44100, 48000)
//	out := make([][2]int16, r.OutputFramesNeeded(len(in)))
//	n := r.Resample(in, out)
package resample
