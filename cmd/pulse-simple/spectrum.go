// ABOUTME: Spectrum command
// ABOUTME: Records stereo float audio and shows the frequency spectrum
package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Resonate-Protocol/pulse-simple-go/internal/spectrum"
	"github.com/Resonate-Protocol/pulse-simple-go/internal/ui"
	"github.com/Resonate-Protocol/pulse-simple-go/pkg/pulse"
)

type recorder = pulse.Record[float32, [2]float32]

func newSpectrumCmd(flags *rootFlags) *cobra.Command {
	var noTUI bool

	cmd := &cobra.Command{
		Use:   "spectrum",
		Short: "Record audio and display its spectrum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := flags.cfg
			sc := cfg.Spectrum

			analyzer, err := spectrum.New(cfg.Rate, sc.Window, sc.FreqsPerColumn, sc.Damping, sc.Channel)
			if err != nil {
				return err
			}

			opts, err := flags.streamOptions()
			if err != nil {
				return err
			}

			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			r, err := pulse.NewRecord[float32, [2]float32](cfg.AppName, "Record", cfg.Rate, opts...)
			if err != nil {
				return err
			}
			defer r.Close()

			if noTUI {
				err = capture(ctx, r, analyzer, func(res spectrum.Result) {
					fmt.Println(res.Format())
				})
				if err != nil {
					return err
				}
				return r.Close()
			}

			// TUI mode: log only to file
			flags.logTo(false)
			defer flags.logTo(true)

			prog := ui.Run("Record", r.Spec().String(), cfg.Device)
			done := make(chan error, 1)
			go func() {
				done <- captureToTUI(ctx, r, analyzer, prog)
			}()

			go func() {
				<-ctx.Done()
				prog.Quit()
			}()

			if _, err := prog.Run(); err != nil {
				log.Printf("TUI error: %v", err)
			}
			cancel()

			if err := <-done; err != nil {
				return err
			}
			return r.Close()
		},
	}

	cmd.Flags().BoolVar(&noTUI, "no-tui", false, "Print plain text lines instead of the TUI")

	return cmd
}

// tuiProgram is the part of the bubbletea program the capture loop drives
type tuiProgram interface {
	Send(msg tea.Msg)
	Quit()
}

// captureToTUI feeds each analysis to prog. A capture failure is shown in
// the TUI and stops it.
func captureToTUI(ctx context.Context, r *recorder, a *spectrum.Analyzer, prog tuiProgram) error {
	latencyFailed := false
	err := capture(ctx, r, a, func(res spectrum.Result) {
		latency, err := r.Latency()
		if err != nil && !errors.Is(err, errors.ErrUnsupported) && !latencyFailed {
			log.Printf("Latency query failed: %v", err)
			latencyFailed = true
		}
		prog.Send(ui.SpectrumMsg{
			TopFrequency: res.TopFrequency,
			TopVolume:    res.TopVolume,
			Levels:       res.Levels,
			Latency:      latency,
		})
	})
	if err != nil {
		log.Printf("Capture stopped: %v", err)
		prog.Send(ui.ErrorMsg{Err: err})
		prog.Quit()
	}
	return err
}

// capture reads windows until ctx is done, reporting each analysis
func capture(ctx context.Context, r *recorder, a *spectrum.Analyzer, report func(spectrum.Result)) error {
	data := make([][2]float32, a.Window())
	for ctx.Err() == nil {
		if err := r.Read(data); err != nil {
			return err
		}
		res, err := a.Analyze(data)
		if err != nil {
			return err
		}
		report(res)
	}
	return nil
}
