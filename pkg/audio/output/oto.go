// ABOUTME: Oto-based playback transport
// ABOUTME: Feeds a persistent oto player through a pipe so writes block
package output

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/Resonate-Protocol/pulse-simple-go/pkg/audio"
	"github.com/Resonate-Protocol/pulse-simple-go/pkg/pulse"
	"github.com/ebitengine/oto/v3"
)

var (
	ErrPlaybackOnly     = errors.New("oto supports playback streams only")
	ErrDeviceSelection  = errors.New("oto always plays on the system default device")
	ErrFormatChange     = errors.New("oto cannot change format once initialized")
	ErrFormatNotAllowed = errors.New("sample format not supported by oto")
)

// drainPoll is how often Drain checks the player's buffer
const drainPoll = 5 * time.Millisecond

// Oto is a playback-only transport using the oto library.
//
// oto allows a single context per process, so every stream opened through
// one Oto must use the same sample spec.
type Oto struct {
	mu     sync.Mutex
	otoCtx *oto.Context
	spec   audio.SampleSpec
}

// NewOto creates a new Oto transport. No device is touched until Open.
func NewOto() *Oto {
	return &Oto{}
}

// otoFormat maps a format tag to oto's formats, which are all little-endian
func otoFormat(tag audio.FormatTag) (oto.Format, error) {
	switch tag {
	case audio.FormatU8:
		return oto.FormatUnsignedInt8, nil
	case audio.FormatS16LE:
		return oto.FormatSignedInt16LE, nil
	case audio.FormatFloat32LE:
		return oto.FormatFloat32LE, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrFormatNotAllowed, tag)
	}
}

// Open implements pulse.Transport
func (o *Oto) Open(req pulse.OpenRequest) (pulse.Resource, error) {
	if req.Direction != audio.Playback {
		return nil, ErrPlaybackOnly
	}
	if req.Device != "" {
		return nil, fmt.Errorf("%w (requested %q)", ErrDeviceSelection, req.Device)
	}
	format, err := otoFormat(req.Spec.Format)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.otoCtx != nil && o.spec != req.Spec {
		return nil, fmt.Errorf("%w (%s -> %s)", ErrFormatChange, o.spec, req.Spec)
	}

	if o.otoCtx == nil {
		op := &oto.NewContextOptions{
			SampleRate:   int(req.Spec.Rate),
			ChannelCount: int(req.Spec.Channels),
			Format:       format,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			return nil, fmt.Errorf("failed to create oto context: %w", err)
		}

		<-readyChan

		o.otoCtx = ctx
		o.spec = req.Spec
		log.Printf("Audio output initialized: %dHz, %d channels (oto/%s)",
			req.Spec.Rate, req.Spec.Channels, req.Spec.Format)
	} else if err := o.otoCtx.Resume(); err != nil {
		return nil, fmt.Errorf("failed to resume oto context: %w", err)
	}

	// Persistent player fed from a pipe; a pipe write returns only once the
	// player has consumed every byte
	pr, pw := io.Pipe()
	player := o.otoCtx.NewPlayer(pr)
	player.Play()

	return &otoStream{
		player:      player,
		pipeReader:  pr,
		pipeWriter:  pw,
		bytesPerSec: req.Spec.BytesPerSecond(),
	}, nil
}

// otoStream is one open oto playback stream
type otoStream struct {
	player      *oto.Player
	pipeReader  *io.PipeReader
	pipeWriter  *io.PipeWriter
	bytesPerSec int
}

// Write blocks until the player has taken all of p
func (s *otoStream) Write(p []byte) error {
	if _, err := s.pipeWriter.Write(p); err != nil {
		return fmt.Errorf("pipe write failed: %w", err)
	}
	return nil
}

func (s *otoStream) Read(p []byte) error {
	return ErrPlaybackOnly
}

// Drain waits until the player's internal buffer is empty
func (s *otoStream) Drain() error {
	for s.player.BufferedSize() > 0 {
		if err := s.player.Err(); err != nil {
			return err
		}
		time.Sleep(drainPoll)
	}
	return nil
}

// Latency estimates latency from the amount of audio still buffered
func (s *otoStream) Latency() (time.Duration, error) {
	if s.bytesPerSec == 0 {
		return 0, nil
	}
	buffered := s.player.BufferedSize()
	return time.Duration(buffered) * time.Second / time.Duration(s.bytesPerSec), nil
}

// Close releases the player and its pipe
func (s *otoStream) Close() error {
	var errs []error
	if err := s.pipeWriter.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := s.player.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := s.pipeReader.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
