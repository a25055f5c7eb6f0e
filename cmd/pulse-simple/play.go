// ABOUTME: Play command
// ABOUTME: Decodes an MP3 or raw PCM file and plays it at the configured rate
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Resonate-Protocol/pulse-simple-go/pkg/audio/decode"
	"github.com/Resonate-Protocol/pulse-simple-go/pkg/audio/resample"
	"github.com/Resonate-Protocol/pulse-simple-go/pkg/pulse"
)

const playChunkFrames = 4096

func newPlayCmd(flags *rootFlags) *cobra.Command {
	var rawRate uint32

	cmd := &cobra.Command{
		Use:   "play FILE",
		Short: "Play an MP3 file, or raw s16le stereo with --raw-rate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := flags.cfg

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			dec, err := openDecoder(f, args[0], rawRate)
			if err != nil {
				return err
			}

			opts, err := flags.streamOptions()
			if err != nil {
				return err
			}

			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			p, err := pulse.NewPlayback[int16, [2]int16](cfg.AppName, filepath.Base(args[0]), cfg.Rate, opts...)
			if err != nil {
				return err
			}
			defer p.Close()

			if d, ok := dec.(*decode.MP3Decoder); ok {
				if frames := d.Frames(); frames >= 0 {
					log.Printf("Decoding %s: %s at %d Hz", filepath.Base(args[0]),
						time.Duration(frames)*time.Second/time.Duration(d.SampleRate()), d.SampleRate())
				}
			}

			rs := resample.New(dec.SampleRate(), cfg.Rate)
			if !rs.Passthrough() {
				log.Printf("Resampling %d Hz -> %d Hz", dec.SampleRate(), cfg.Rate)
			}

			in := make([][2]int16, playChunkFrames)
			out := make([][2]int16, rs.OutputFramesNeeded(playChunkFrames))
			var played int64
			for ctx.Err() == nil {
				n, err := dec.Read(in)
				if n > 0 {
					m := rs.Resample(in[:n], out)
					if werr := p.Write(out[:m]); werr != nil {
						return werr
					}
					played += int64(m)
				}
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					return err
				}
			}

			log.Printf("Played %d frames", played)
			if ctx.Err() == nil {
				if err := p.Drain(); err != nil && !errors.Is(err, errors.ErrUnsupported) {
					log.Printf("Drain failed: %v", err)
				}
			} else if err := p.Flush(); err != nil && !errors.Is(err, errors.ErrUnsupported) {
				log.Printf("Flush failed: %v", err)
			}
			return p.Close()
		},
	}

	cmd.Flags().Uint32Var(&rawRate, "raw-rate", 0, "Treat the file as raw s16le stereo at this rate")

	return cmd
}

func openDecoder(r io.Reader, name string, rawRate uint32) (decode.Decoder, error) {
	if rawRate != 0 {
		return decode.NewPCM(r, rawRate)
	}
	if strings.EqualFold(filepath.Ext(name), ".mp3") {
		return decode.NewMP3(r)
	}
	return nil, fmt.Errorf("unsupported file %s: expected .mp3 or --raw-rate", name)
}
