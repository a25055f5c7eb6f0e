// ABOUTME: Owner of a single native stream resource
// ABOUTME: Guarantees the resource is released exactly once
package pulse

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"strings"
	"time"

	"github.com/Resonate-Protocol/pulse-simple-go/pkg/audio"
	"github.com/google/uuid"
)

// handle owns one open resource. It is created only by openHandle, so a
// handle that exists was opened successfully. res is nil once released.
type handle struct {
	id      uuid.UUID
	req     OpenRequest
	res     Resource
	cleanup runtime.Cleanup
}

// unclosed is what the runtime cleanup needs to release a leaked resource.
// It must not reference the handle itself.
type unclosed struct {
	id  uuid.UUID
	res Resource
}

func releaseUnclosed(u unclosed) {
	log.Printf("Warning: stream %s was not closed, releasing", u.id)
	if err := u.res.Close(); err != nil {
		log.Printf("Warning: release of stream %s failed: %v", u.id, err)
	}
}

// buildRequest validates caller parameters. Nothing here contacts the server.
func buildRequest(name, description string, dir audio.Direction, device string, shape audio.FrameShape, rate uint32) (OpenRequest, error) {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"name", name},
		{"description", description},
		{"device", device},
	} {
		if strings.IndexByte(field.value, 0) >= 0 {
			return OpenRequest{}, &ConfigurationError{Field: field.name, Err: ErrEmbeddedNUL}
		}
	}

	spec, err := shape.Spec(rate)
	if err != nil {
		field := "sample spec"
		if errors.Is(err, audio.ErrInvalidRate) {
			field = "rate"
		}
		return OpenRequest{}, &ConfigurationError{Field: field, Err: err}
	}

	return OpenRequest{
		AppName:    name,
		StreamName: description,
		Direction:  dir,
		Device:     device,
		Spec:       spec,
	}, nil
}

// openHandle opens a resource through t. On failure no resource stays open.
func openHandle(t Transport, req OpenRequest) (*handle, error) {
	res, err := t.Open(req)
	if err != nil {
		if res != nil {
			if cerr := res.Close(); cerr != nil {
				log.Printf("Warning: failed to release partially opened stream: %v", cerr)
			}
		}
		return nil, &ConnectionError{Direction: req.Direction, Device: req.Device, Err: err}
	}
	if res == nil {
		return nil, &ConnectionError{Direction: req.Direction, Device: req.Device, Err: errors.New("transport returned no stream")}
	}

	h := &handle{
		id:  uuid.New(),
		req: req,
		res: res,
	}
	h.cleanup = runtime.AddCleanup(h, releaseUnclosed, unclosed{id: h.id, res: res})

	device := req.Device
	if device == "" {
		device = "default"
	}
	log.Printf("Audio stream opened: %s %s on %s device (%s/%s) [%s]",
		req.Direction, req.Spec, device, req.AppName, req.StreamName, h.id)

	return h, nil
}

func (h *handle) write(p []byte) error {
	if h.res == nil {
		return &IOError{Op: "write", Bytes: len(p), Err: ErrClosed}
	}
	if len(p) == 0 {
		return nil
	}

	err := h.res.Write(p)
	runtime.KeepAlive(h)
	if err != nil {
		return &IOError{Op: "write", Bytes: len(p), Err: err}
	}
	return nil
}

func (h *handle) read(p []byte) error {
	if h.res == nil {
		return &IOError{Op: "read", Bytes: len(p), Err: ErrClosed}
	}
	if len(p) == 0 {
		return nil
	}

	err := h.res.Read(p)
	runtime.KeepAlive(h)
	if err != nil {
		return &IOError{Op: "read", Bytes: len(p), Err: err}
	}
	return nil
}

func (h *handle) drain() error {
	if h.res == nil {
		return &IOError{Op: "drain", Err: ErrClosed}
	}
	d, ok := h.res.(Drainer)
	if !ok {
		return &IOError{Op: "drain", Err: errors.ErrUnsupported}
	}

	err := d.Drain()
	runtime.KeepAlive(h)
	if err != nil {
		return &IOError{Op: "drain", Err: err}
	}
	return nil
}

func (h *handle) flush() error {
	if h.res == nil {
		return &IOError{Op: "flush", Err: ErrClosed}
	}
	f, ok := h.res.(Flusher)
	if !ok {
		return &IOError{Op: "flush", Err: errors.ErrUnsupported}
	}

	err := f.Flush()
	runtime.KeepAlive(h)
	if err != nil {
		return &IOError{Op: "flush", Err: err}
	}
	return nil
}

func (h *handle) latency() (time.Duration, error) {
	if h.res == nil {
		return 0, &IOError{Op: "latency", Err: ErrClosed}
	}
	l, ok := h.res.(LatencyReporter)
	if !ok {
		return 0, &IOError{Op: "latency", Err: errors.ErrUnsupported}
	}

	d, err := l.Latency()
	runtime.KeepAlive(h)
	if err != nil {
		return 0, &IOError{Op: "latency", Err: err}
	}
	return d, nil
}

// close releases the resource on the first call and does nothing afterwards.
// The cleanup is stopped first so the resource cannot be released twice.
func (h *handle) close() error {
	if h.res == nil {
		return nil
	}

	h.cleanup.Stop()
	res := h.res
	h.res = nil

	if err := res.Close(); err != nil {
		return &IOError{Op: "close", Err: fmt.Errorf("release stream %s: %w", h.id, err)}
	}

	log.Printf("Audio stream closed [%s]", h.id)
	return nil
}
