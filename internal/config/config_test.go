// ABOUTME: Tests for configuration loading
// ABOUTME: Covers defaults, YAML overrides and joined validation errors
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Validate(Default()))
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromReaderOverridesDefaults(t *testing.T) {
	const doc = `
app_name: studio
backend: oto
rate: 44100
tone:
  left_hz: 1000
spectrum:
  window: 4096
  channel: 1
`
	cfg, err := LoadFromReader(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "studio", cfg.AppName)
	assert.Equal(t, "oto", cfg.Backend)
	assert.Equal(t, uint32(44100), cfg.Rate)
	assert.Equal(t, 1000.0, cfg.Tone.LeftHz)
	assert.Equal(t, DefaultRightHz, cfg.Tone.RightHz)
	assert.Equal(t, 4096, cfg.Spectrum.Window)
	assert.Equal(t, DefaultFreqsPerColumn, cfg.Spectrum.FreqsPerColumn)
	assert.Equal(t, 1, cfg.Spectrum.Channel)
}

func TestLoadFromReaderEmptyDocument(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromReaderRejectsUnknownFields(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("sample_rate: 48000\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sample_rate")
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.AppName = ""
	cfg.Backend = "jack"
	cfg.Rate = 0
	cfg.Spectrum.Damping = 1.5

	err := Validate(cfg)
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "app_name must not be empty")
	assert.Contains(t, msg, `backend "jack" is invalid`)
	assert.Contains(t, msg, "rate 0 is out of range")
	assert.Contains(t, msg, "spectrum.damping 1.5")
}

func TestValidateToneBelowNyquist(t *testing.T) {
	cfg := Default()
	cfg.Rate = 8000
	cfg.Tone.LeftHz = 4000

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tone.left_hz 4000 must be between 0 and 4000")
}

func TestValidateSpectrumWindow(t *testing.T) {
	cfg := Default()
	cfg.Spectrum.Window = 64

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spectrum.window 64 must be at least 4 x freqs_per_column (80)")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pulse-simple.yaml")
	require.NoError(t, os.WriteFile(path, []byte("device: alsa_output.pci\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "alsa_output.pci", cfg.Device)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: open")
}
