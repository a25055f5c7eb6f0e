// ABOUTME: Tests for the command line wiring
// ABOUTME: Covers flag overrides, decoder selection and the capture loop
package main

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Resonate-Protocol/pulse-simple-go/internal/spectrum"
	"github.com/Resonate-Protocol/pulse-simple-go/internal/ui"
	"github.com/Resonate-Protocol/pulse-simple-go/pkg/audio/decode"
	"github.com/Resonate-Protocol/pulse-simple-go/pkg/pulse"
	"github.com/Resonate-Protocol/pulse-simple-go/pkg/pulse/mock"
)

func TestRootCommands(t *testing.T) {
	cmd := newRootCmd()

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"tone", "spectrum", "play"}, names)
}

func TestSetupAppliesFlagOverrides(t *testing.T) {
	var flags rootFlags
	cmd := newRootCmd()
	tone, _, err := cmd.Find([]string{"tone"})
	require.NoError(t, err)

	logPath := filepath.Join(t.TempDir(), "test.log")
	require.NoError(t, tone.ParseFlags([]string{
		"--log-file", logPath,
		"--backend", "oto",
		"--device", "alsa_output.usb",
		"--rate", "44100",
	}))

	flags.logFile = logPath
	flags.backend = "oto"
	flags.device = "alsa_output.usb"
	flags.rate = 44100
	require.NoError(t, flags.setup(tone))
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		flags.log.Close()
	})

	assert.Equal(t, "oto", flags.cfg.Backend)
	assert.Equal(t, "alsa_output.usb", flags.cfg.Device)
	assert.Equal(t, uint32(44100), flags.cfg.Rate)
	assert.Equal(t, logPath, flags.cfg.LogFile)

	opts, err := flags.streamOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 2)
}

func TestSetupRejectsInvalidOverride(t *testing.T) {
	var flags rootFlags
	cmd := newRootCmd()
	tone, _, err := cmd.Find([]string{"tone"})
	require.NoError(t, err)

	require.NoError(t, tone.ParseFlags([]string{"--backend", "jack"}))
	flags.backend = "jack"

	err = flags.setup(tone)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `backend "jack" is invalid`)
}

func TestOpenDecoder(t *testing.T) {
	d, err := openDecoder(bytes.NewReader(nil), "tone.raw", 22050)
	require.NoError(t, err)
	assert.IsType(t, &decode.PCMDecoder{}, d)
	assert.Equal(t, uint32(22050), d.SampleRate())

	_, err = openDecoder(bytes.NewReader(nil), "tone.wav", 0)
	assert.ErrorContains(t, err, "unsupported file")

	_, err = openDecoder(bytes.NewReader([]byte("junk")), "song.MP3", 0)
	assert.ErrorContains(t, err, "mp3")
}

func TestCaptureReadsWholeWindows(t *testing.T) {
	tr := &mock.Transport{}
	r, err := pulse.NewRecord[float32, [2]float32]("test", "Record", 48000, pulse.WithTransport(tr))
	require.NoError(t, err)
	defer r.Close()

	a, err := spectrum.New(48000, 256, 16, 0.95, 0)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var results []spectrum.Result
	err = capture(ctx, r, a, func(res spectrum.Result) {
		results = append(results, res)
		if len(results) == 3 {
			cancel()
		}
	})
	require.NoError(t, err)

	assert.Len(t, results, 3)
	res := tr.LastResource()
	assert.Equal(t, []int{2048, 2048, 2048}, res.ReadCallLens())
}

func TestCaptureStopsOnReadError(t *testing.T) {
	tr := &mock.Transport{ReadError: mock.ErrInjected}
	r, err := pulse.NewRecord[float32, [2]float32]("test", "Record", 48000, pulse.WithTransport(tr))
	require.NoError(t, err)
	defer r.Close()

	a, err := spectrum.New(48000, 256, 16, 0.95, 0)
	require.NoError(t, err)

	err = capture(context.Background(), r, a, func(spectrum.Result) {
		t.Fatal("no result expected")
	})

	var ioErr *pulse.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.ErrorIs(t, err, mock.ErrInjected)
}

// fakeProgram records what the capture loop sends to the TUI
type fakeProgram struct {
	msgs []tea.Msg
	quit bool
}

func (p *fakeProgram) Send(msg tea.Msg) { p.msgs = append(p.msgs, msg) }
func (p *fakeProgram) Quit()            { p.quit = true }

func TestCaptureToTUIReportsReadError(t *testing.T) {
	tr := &mock.Transport{ReadError: mock.ErrInjected}
	r, err := pulse.NewRecord[float32, [2]float32]("test", "Record", 48000, pulse.WithTransport(tr))
	require.NoError(t, err)
	defer r.Close()

	a, err := spectrum.New(48000, 256, 16, 0.95, 0)
	require.NoError(t, err)

	prog := &fakeProgram{}
	err = captureToTUI(context.Background(), r, a, prog)
	require.ErrorIs(t, err, mock.ErrInjected)

	require.Len(t, prog.msgs, 1)
	msg, ok := prog.msgs[0].(ui.ErrorMsg)
	require.True(t, ok, "expected ui.ErrorMsg, got %T", prog.msgs[0])
	assert.ErrorIs(t, msg.Err, mock.ErrInjected)
	assert.True(t, prog.quit, "expected the TUI to be stopped")
}

func TestCaptureToTUISendsSpectrum(t *testing.T) {
	tr := &mock.Transport{}
	r, err := pulse.NewRecord[float32, [2]float32]("test", "Record", 48000, pulse.WithTransport(tr))
	require.NoError(t, err)
	defer r.Close()

	a, err := spectrum.New(48000, 256, 16, 0.95, 0)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	prog := &cancelAfter{n: 2, cancel: cancel}
	require.NoError(t, captureToTUI(ctx, r, a, prog))

	require.Len(t, prog.msgs, 2)
	for _, m := range prog.msgs {
		assert.IsType(t, ui.SpectrumMsg{}, m)
	}
	assert.False(t, prog.quit)
}

// cancelAfter cancels the capture once n messages arrived
type cancelAfter struct {
	fakeProgram
	n      int
	cancel context.CancelFunc
}

func (p *cancelAfter) Send(msg tea.Msg) {
	p.fakeProgram.Send(msg)
	if len(p.msgs) == p.n {
		p.cancel()
	}
}
