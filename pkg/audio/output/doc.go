// ABOUTME: Audio output package providing stream transports
// ABOUTME: Offers backend selection and an oto playback transport
// Package output provides stream transports for pulse streams.
//
// The pulse backend (the default) connects to the PulseAudio server. The oto
// backend plays through the oto library on systems without PulseAudio; it
// supports playback streams in u8, s16le or float32le only.
//
// Example:
//
//	tr, err := output.Transport("oto")
//	p, err := pulse.NewPlayback[int16, [2]int16]("app", "music", 48000,
//	    pulse.WithTransport(tr))
package output
