// ABOUTME: Root command with shared flags
// ABOUTME: Loads configuration, sets up logging and builds stream options
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Resonate-Protocol/pulse-simple-go/internal/config"
	"github.com/Resonate-Protocol/pulse-simple-go/internal/version"
	"github.com/Resonate-Protocol/pulse-simple-go/pkg/audio/output"
	"github.com/Resonate-Protocol/pulse-simple-go/pkg/pulse"
)

type rootFlags struct {
	configPath string
	logFile    string
	backend    string
	device     string
	rate       uint32

	cfg *config.Config
	log *os.File
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:     "pulse-simple",
		Short:   "Play and record audio through blocking PCM streams",
		Version: version.Version,
		Example: `  pulse-simple tone
  pulse-simple spectrum --no-tui
  pulse-simple play song.mp3 --backend oto`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if flags.log != nil {
				return flags.log.Close()
			}
			return nil
		},
	}

	cmd.SetVersionTemplate(fmt.Sprintf("%s %s by %s\n", version.Product, version.Version, version.Manufacturer))

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&flags.logFile, "log-file", "", "Log file path (default from config)")
	pf.StringVar(&flags.backend, "backend", "", fmt.Sprintf("Output backend %v", output.Backends()))
	pf.StringVar(&flags.device, "device", "", "Device name (default: server default)")
	pf.Uint32Var(&flags.rate, "rate", 0, "Sample rate in Hz")

	cmd.AddCommand(
		newToneCmd(&flags),
		newSpectrumCmd(&flags),
		newPlayCmd(&flags),
	)

	return cmd
}

// setup loads the config, applies flag overrides and starts logging
func (f *rootFlags) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}

	pf := cmd.Flags()
	if pf.Changed("log-file") {
		cfg.LogFile = f.logFile
	}
	if pf.Changed("backend") {
		cfg.Backend = f.backend
	}
	if pf.Changed("device") {
		cfg.Device = f.device
	}
	if pf.Changed("rate") {
		cfg.Rate = f.rate
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	f.cfg = cfg

	logFile, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("error opening log file: %w", err)
	}
	f.log = logFile
	f.logTo(true)

	log.Printf("%s %s (%s backend)", version.Product, version.Version, cfg.Backend)
	return nil
}

// logTo sends logs to the file, and to stdout when requested
func (f *rootFlags) logTo(stdout bool) {
	if f.log == nil {
		return
	}
	if stdout {
		log.SetOutput(io.MultiWriter(os.Stdout, f.log))
		return
	}
	log.SetOutput(f.log)
}

// streamOptions selects the configured backend and device
func (f *rootFlags) streamOptions() ([]pulse.Option, error) {
	transport, err := output.Transport(f.cfg.Backend)
	if err != nil {
		return nil, err
	}
	return []pulse.Option{
		pulse.WithTransport(transport),
		pulse.WithDevice(f.cfg.Device),
	}, nil
}

// signalContext is cancelled on SIGINT or SIGTERM
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			log.Printf("Received %v, shutting down...", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
