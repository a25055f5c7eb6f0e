// Package mock provides an in-memory [pulse.Transport] for unit tests.
//
// The mocks are safe for concurrent use, since a leaked stream is released
// from the runtime's cleanup goroutine. They record every call so tests can
// assert on opened specs, bytes transferred and release counts, and expose
// exported fields that control failures.
//
// Typical usage:
//
//	tr := &mock.Transport{}
//	p, err := pulse.NewPlayback[int16, [2]int16]("app", "test", 48000,
//	    pulse.WithTransport(tr))
//	...
//	res := tr.LastResource()
//	res.BytesWritten()
package mock

import (
	"errors"
	"sync"
	"time"

	"github.com/Resonate-Protocol/pulse-simple-go/pkg/pulse"
)

// ErrInjected is a convenient error for tests to inject
var ErrInjected = errors.New("mock: injected failure")

// ─── Transport ────────────────────────────────────────────────────────────────

// Transport is a mock implementation of [pulse.Transport].
type Transport struct {
	mu sync.Mutex

	// OpenError is returned by Open when set.
	OpenError error

	// PartialOnError makes a failing Open also return a half-opened resource,
	// which the caller is expected to close.
	PartialOnError bool

	// WriteError and ReadError are copied into each new resource.
	WriteError error
	ReadError  error

	// Fill is the byte value reads populate buffers with. Defaults to 0xAB.
	Fill byte

	// OpenCalls records every request passed to Open, including failed ones.
	OpenCalls []pulse.OpenRequest

	resources []*Resource
}

// Open implements [pulse.Transport].
func (t *Transport) Open(req pulse.OpenRequest) (pulse.Resource, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.OpenCalls = append(t.OpenCalls, req)

	fill := t.Fill
	if fill == 0 {
		fill = 0xAB
	}
	res := &Resource{
		Request:    req,
		WriteError: t.WriteError,
		ReadError:  t.ReadError,
		Fill:       fill,
	}

	if t.OpenError != nil {
		if t.PartialOnError {
			t.resources = append(t.resources, res)
			return res, t.OpenError
		}
		return nil, t.OpenError
	}

	t.resources = append(t.resources, res)
	return res, nil
}

// OpenCount returns how many times Open was called.
func (t *Transport) OpenCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.OpenCalls)
}

// Resources returns every resource handed out, in order.
func (t *Transport) Resources() []*Resource {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*Resource, len(t.resources))
	copy(out, t.resources)
	return out
}

// LastResource returns the most recently opened resource, or nil.
func (t *Transport) LastResource() *Resource {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.resources) == 0 {
		return nil
	}
	return t.resources[len(t.resources)-1]
}

// ─── Resource ─────────────────────────────────────────────────────────────────

// Resource is a mock implementation of [pulse.Resource] that also implements
// [pulse.Drainer], [pulse.Flusher] and [pulse.LatencyReporter].
type Resource struct {
	mu sync.Mutex

	// Request is the open request that produced this resource.
	Request pulse.OpenRequest

	// WriteError is returned by Write when set.
	WriteError error

	// ReadError is returned by Read when set.
	ReadError error

	// FailAfter makes Write and Read fail once this many bytes have moved
	// in total. Zero disables it.
	FailAfter int

	// Fill is the byte value Read populates buffers with.
	Fill byte

	// LatencyResult is returned by Latency.
	LatencyResult time.Duration

	// WriteCalls records the length of each Write call.
	WriteCalls []int

	// ReadCalls records the length of each Read call.
	ReadCalls []int

	// CallCountDrain records how many times Drain was called.
	CallCountDrain int

	// CallCountFlush records how many times Flush was called.
	CallCountFlush int

	written []byte
	read    int
	closes  int
	moved   int
}

func (r *Resource) fail(n int) bool {
	if r.FailAfter > 0 && r.moved+n > r.FailAfter {
		r.moved = r.FailAfter
		return true
	}
	r.moved += n
	return false
}

// Write implements [pulse.Resource]. Records the call and keeps a copy of p.
func (r *Resource) Write(p []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.WriteCalls = append(r.WriteCalls, len(p))
	if r.WriteError != nil {
		return r.WriteError
	}
	if r.fail(len(p)) {
		return ErrInjected
	}
	r.written = append(r.written, p...)
	return nil
}

// Read implements [pulse.Resource]. Fills p with Fill.
func (r *Resource) Read(p []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ReadCalls = append(r.ReadCalls, len(p))
	if r.ReadError != nil {
		return r.ReadError
	}
	if r.fail(len(p)) {
		return ErrInjected
	}
	for i := range p {
		p[i] = r.Fill
	}
	r.read += len(p)
	return nil
}

// Drain implements [pulse.Drainer].
func (r *Resource) Drain() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.CallCountDrain++
	return nil
}

// Flush implements [pulse.Flusher].
func (r *Resource) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.CallCountFlush++
	return nil
}

// Latency implements [pulse.LatencyReporter].
func (r *Resource) Latency() (time.Duration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.LatencyResult, nil
}

// Close implements [pulse.Resource]. Every call is counted.
func (r *Resource) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closes++
	return nil
}

// Written returns a copy of every byte accepted by Write.
func (r *Resource) Written() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]byte, len(r.written))
	copy(out, r.written)
	return out
}

// BytesWritten returns the number of bytes accepted by Write.
func (r *Resource) BytesWritten() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.written)
}

// BytesRead returns the number of bytes delivered by Read.
func (r *Resource) BytesRead() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read
}

// CloseCount returns how many times Close was called.
func (r *Resource) CloseCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closes
}

// WriteCallLens returns a copy of WriteCalls.
func (r *Resource) WriteCallLens() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.WriteCalls...)
}

// ReadCallLens returns a copy of ReadCalls.
func (r *Resource) ReadCallLens() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.ReadCalls...)
}
