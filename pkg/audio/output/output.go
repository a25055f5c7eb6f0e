// ABOUTME: Output backend selection
// ABOUTME: Maps backend names to stream transports
package output

import (
	"fmt"
	"sort"

	"github.com/Resonate-Protocol/pulse-simple-go/pkg/pulse"
)

const (
	// BackendPulse talks to the PulseAudio server through libpulse-simple
	BackendPulse = "pulse"

	// BackendOto plays through oto (playback only)
	BackendOto = "oto"
)

var backends = map[string]func() pulse.Transport{
	BackendPulse: func() pulse.Transport { return pulse.DefaultTransport },
	BackendOto:   func() pulse.Transport { return NewOto() },
}

// Backends returns the known backend names, sorted
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Transport returns the transport for the named backend.
// An empty name selects BackendPulse.
func Transport(name string) (pulse.Transport, error) {
	if name == "" {
		name = BackendPulse
	}
	newTransport, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown output backend: %q (supported: %v)", name, Backends())
	}
	return newTransport(), nil
}
