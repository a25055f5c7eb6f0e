// ABOUTME: Configuration for the pulse-simple demo programs
// ABOUTME: Loads YAML with defaults and validates every field
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/Resonate-Protocol/pulse-simple-go/pkg/audio"
	"github.com/Resonate-Protocol/pulse-simple-go/pkg/audio/output"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAppName        = "pulse-simple"
	DefaultRate           = 48000
	DefaultLogFile        = "pulse-simple.log"
	DefaultLeftHz         = 440.0
	DefaultRightHz        = 330.0
	DefaultAmplitude      = 1.0
	DefaultWindow         = 2048
	DefaultFreqsPerColumn = 20
	DefaultDamping        = 0.95
)

// Config is the root configuration
type Config struct {
	AppName  string         `yaml:"app_name"`
	Backend  string         `yaml:"backend"`
	Device   string         `yaml:"device"`
	Rate     uint32         `yaml:"rate"`
	LogFile  string         `yaml:"log_file"`
	Tone     ToneConfig     `yaml:"tone"`
	Spectrum SpectrumConfig `yaml:"spectrum"`
}

// ToneConfig configures the tone generator
type ToneConfig struct {
	LeftHz    float64 `yaml:"left_hz"`
	RightHz   float64 `yaml:"right_hz"`
	Amplitude float64 `yaml:"amplitude"`
}

// SpectrumConfig configures the spectrum analyzer
type SpectrumConfig struct {
	Window         int     `yaml:"window"`
	FreqsPerColumn int     `yaml:"freqs_per_column"`
	Damping        float64 `yaml:"damping"`
	Channel        int     `yaml:"channel"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		AppName: DefaultAppName,
		Backend: output.BackendPulse,
		Rate:    DefaultRate,
		LogFile: DefaultLogFile,
		Tone: ToneConfig{
			LeftHz:    DefaultLeftHz,
			RightHz:   DefaultRightHz,
			Amplitude: DefaultAmplitude,
		},
		Spectrum: SpectrumConfig{
			Window:         DefaultWindow,
			FreqsPerColumn: DefaultFreqsPerColumn,
			Damping:        DefaultDamping,
		},
	}
}

// Load reads the YAML configuration file at path on top of the defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r over the defaults and
// validates the result. Unknown keys are rejected.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.AppName == "" {
		errs = append(errs, errors.New("app_name must not be empty"))
	}
	if !slices.Contains(output.Backends(), cfg.Backend) {
		errs = append(errs, fmt.Errorf("backend %q is invalid; valid values: %v", cfg.Backend, output.Backends()))
	}
	if cfg.Rate < 1 || cfg.Rate > audio.MaxRate {
		errs = append(errs, fmt.Errorf("rate %d is out of range (1-%d)", cfg.Rate, audio.MaxRate))
	}

	nyquist := float64(cfg.Rate) / 2
	if cfg.Tone.LeftHz <= 0 || cfg.Tone.LeftHz >= nyquist {
		errs = append(errs, fmt.Errorf("tone.left_hz %g must be between 0 and %g", cfg.Tone.LeftHz, nyquist))
	}
	if cfg.Tone.RightHz <= 0 || cfg.Tone.RightHz >= nyquist {
		errs = append(errs, fmt.Errorf("tone.right_hz %g must be between 0 and %g", cfg.Tone.RightHz, nyquist))
	}
	if cfg.Tone.Amplitude <= 0 || cfg.Tone.Amplitude > 1 {
		errs = append(errs, fmt.Errorf("tone.amplitude %g must be in (0, 1]", cfg.Tone.Amplitude))
	}

	if cfg.Spectrum.FreqsPerColumn < 1 {
		errs = append(errs, fmt.Errorf("spectrum.freqs_per_column %d must be positive", cfg.Spectrum.FreqsPerColumn))
	} else if cfg.Spectrum.Window < 4*cfg.Spectrum.FreqsPerColumn {
		errs = append(errs, fmt.Errorf("spectrum.window %d must be at least 4 x freqs_per_column (%d)",
			cfg.Spectrum.Window, 4*cfg.Spectrum.FreqsPerColumn))
	}
	if cfg.Spectrum.Damping <= 0 || cfg.Spectrum.Damping > 1 {
		errs = append(errs, fmt.Errorf("spectrum.damping %g must be in (0, 1]", cfg.Spectrum.Damping))
	}
	if cfg.Spectrum.Channel < 0 || cfg.Spectrum.Channel > 1 {
		errs = append(errs, fmt.Errorf("spectrum.channel %d must be 0 or 1", cfg.Spectrum.Channel))
	}

	return errors.Join(errs...)
}
