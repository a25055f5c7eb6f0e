// ABOUTME: Default transport backed by libpulse-simple
// ABOUTME: Adapts the native package to the Transport interface
package pulse

import (
	"github.com/Resonate-Protocol/pulse-simple-go/pkg/pulse/native"
)

// DefaultTransport connects to the default local PulseAudio server
var DefaultTransport Transport = TransportFunc(openNative)

func openNative(req OpenRequest) (Resource, error) {
	s, err := native.Open(req.AppName, req.StreamName, req.Direction, req.Device, req.Spec)
	if err != nil {
		return nil, err
	}
	return s, nil
}
