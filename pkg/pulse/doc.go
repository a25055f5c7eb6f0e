// ABOUTME: Typed blocking PCM streams for the PulseAudio server
// ABOUTME: Provides Playback and Record over an exactly-once native handle
// Package pulse provides typed, blocking PCM playback and capture against
// the default local PulseAudio server.
//
// The frame type fixes the negotiated format: the element type selects the
// sample encoding (in host byte order) and the array length the channel count.
// The same frame type is used for every Write or Read, so transferred buffers
// always match what the server was told.
//
// Every operation blocks the calling goroutine until the server completes it.
// Failures are reported as *ConfigurationError (bad parameters, nothing sent
// to the server), *ConnectionError (open failed, nothing left open) or
// *IOError (a transfer on an open stream failed; the stream stays open and
// must still be closed).
//
// Example:
//
//	p, err := pulse.NewPlayback[int16, [2]int16]("tonegen", "Playback", 48000)
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	frames := make([][2]int16, 4800)
//	err = p.Write(frames)
package pulse
