// ABOUTME: Tone command
// ABOUTME: Plays a stereo test tone until interrupted
package main

import (
	"errors"
	"log"

	"github.com/spf13/cobra"

	"github.com/Resonate-Protocol/pulse-simple-go/internal/config"
	"github.com/Resonate-Protocol/pulse-simple-go/internal/tone"
	"github.com/Resonate-Protocol/pulse-simple-go/pkg/pulse"
)

func newToneCmd(flags *rootFlags) *cobra.Command {
	var left, right float64

	cmd := &cobra.Command{
		Use:   "tone",
		Short: "Play a test tone, one frequency per channel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := flags.cfg
			if cmd.Flags().Changed("left") {
				cfg.Tone.LeftHz = left
			}
			if cmd.Flags().Changed("right") {
				cfg.Tone.RightHz = right
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}

			opts, err := flags.streamOptions()
			if err != nil {
				return err
			}

			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			p, err := pulse.NewPlayback[int16, [2]int16](cfg.AppName, "Tone", cfg.Rate, opts...)
			if err != nil {
				return err
			}
			defer p.Close()

			src := tone.New(cfg.Rate, cfg.Tone.LeftHz, cfg.Tone.RightHz, cfg.Tone.Amplitude)
			buf := src.Seconds(1)
			log.Printf("Playing %g Hz / %g Hz on %s", cfg.Tone.LeftHz, cfg.Tone.RightHz, p.Spec())

			for ctx.Err() == nil {
				if err := p.Write(buf); err != nil {
					return err
				}
			}

			if err := p.Drain(); err != nil && !errors.Is(err, errors.ErrUnsupported) {
				log.Printf("Drain failed: %v", err)
			}
			return p.Close()
		},
	}

	cmd.Flags().Float64Var(&left, "left", 0, "Left channel frequency in Hz")
	cmd.Flags().Float64Var(&right, "right", 0, "Right channel frequency in Hz")

	return cmd
}
