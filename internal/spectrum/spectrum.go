// ABOUTME: Spectrum analyzer for recorded stereo windows
// ABOUTME: Finds the loudest frequency and buckets the spectrum into 0-9 levels
package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Result is the analysis of one window
type Result struct {
	TopFrequency float64
	TopVolume    float64
	// Levels has one digit 0-9 per displayed column
	Levels []uint8
}

// Analyzer runs an FFT over fixed-size windows of one channel.
// The running column maximum decays by the damping factor on every window.
type Analyzer struct {
	rate           uint32
	window         int
	freqsPerColumn int
	damping        float64
	channel        int

	fft   *fourier.FFT
	input []float64
	coeff []complex128
	max   float64
}

// New creates an analyzer for windows of the given size
func New(rate uint32, window, freqsPerColumn int, damping float64, channel int) (*Analyzer, error) {
	if freqsPerColumn < 1 || window < 4*freqsPerColumn {
		return nil, fmt.Errorf("window %d too small for %d freqs per column", window, freqsPerColumn)
	}
	if channel < 0 || channel > 1 {
		return nil, fmt.Errorf("channel %d out of range", channel)
	}
	return &Analyzer{
		rate:           rate,
		window:         window,
		freqsPerColumn: freqsPerColumn,
		damping:        damping,
		channel:        channel,
		fft:            fourier.NewFFT(window),
		input:          make([]float64, window),
	}, nil
}

// Window returns the number of frames Analyze expects
func (a *Analyzer) Window() int { return a.window }

// Analyze transforms one window of frames. len(frames) must equal Window().
func (a *Analyzer) Analyze(frames [][2]float32) (Result, error) {
	if len(frames) != a.window {
		return Result{}, fmt.Errorf("expected %d frames, got %d", a.window, len(frames))
	}

	for i, f := range frames {
		a.input[i] = float64(f[a.channel])
	}
	a.coeff = a.fft.Coefficients(a.coeff, a.input)

	mags := make([]float64, len(a.coeff))
	for i, c := range a.coeff {
		mags[i] = cmplx.Abs(c)
	}

	var res Result
	half := a.window / 2
	for i := 1; i < half; i++ {
		if mags[i] >= res.TopVolume {
			res.TopFrequency = float64(i) * float64(a.rate) / float64(a.window)
			res.TopVolume = mags[i]
		}
	}

	a.max *= a.damping
	columns := a.window / a.freqsPerColumn
	sums := make([]float64, 0, columns/2)
	for col := 1; col < columns/2; col++ {
		var sum float64
		for _, m := range mags[col*a.freqsPerColumn : (col+1)*a.freqsPerColumn] {
			sum += m
		}
		sums = append(sums, sum)
		a.max = math.Max(a.max, sum)
	}

	res.Levels = make([]uint8, len(sums))
	if a.max > 0 {
		for i, s := range sums {
			res.Levels[i] = uint8(9 * math.Max(s, 0) / a.max)
		}
	}

	return res, nil
}

// Format renders the levels the way the plain text output prints them
func (r Result) Format() string {
	digits := make([]byte, len(r.Levels))
	for i, l := range r.Levels {
		digits[i] = '0' + l
	}
	return fmt.Sprintf("top: %g Hz at volume %g\n[%s]", r.TopFrequency, r.TopVolume, digits)
}
