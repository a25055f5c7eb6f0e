// ABOUTME: Simple linear resampler for converting audio sample rates
// ABOUTME: Converts 16-bit stereo frames using linear interpolation
package resample

// Resampler performs linear interpolation to convert between sample rates.
// The last input frame of each chunk is carried over so chunk boundaries
// interpolate like a continuous stream.
type Resampler struct {
	inputRate  uint32
	outputRate uint32
	ratio      float64
	position   float64
	last       [2]int16
	primed     bool
}

// New creates a new resampler
func New(inputRate, outputRate uint32) *Resampler {
	return &Resampler{
		inputRate:  inputRate,
		outputRate: outputRate,
		ratio:      float64(inputRate) / float64(outputRate),
	}
}

// Passthrough reports whether input and output rates match
func (r *Resampler) Passthrough() bool {
	return r.inputRate == r.outputRate
}

// Resample converts input frames into output and returns the number of
// frames written. output should hold at least OutputFramesNeeded(len(input)).
func (r *Resampler) Resample(input, output [][2]int16) int {
	if len(input) == 0 {
		return 0
	}
	if r.Passthrough() {
		return copy(output, input)
	}

	offset := 0
	if r.primed {
		offset = 1
	}
	total := len(input) + offset
	at := func(i int) [2]int16 {
		if i < offset {
			return r.last
		}
		return input[i-offset]
	}

	outIdx := 0
	for outIdx < len(output) {
		inputIdx := int(r.position)
		if inputIdx >= total-1 {
			break
		}

		frac := r.position - float64(inputIdx)
		a, b := at(inputIdx), at(inputIdx+1)
		for ch := range 2 {
			output[outIdx][ch] = int16(float64(a[ch])*(1.0-frac) + float64(b[ch])*frac)
		}

		outIdx++
		r.position += r.ratio
	}

	// The last frame becomes index 0 of the next chunk
	r.position -= float64(total - 1)
	if r.position < 0 {
		r.position = 0
	}
	r.last = input[len(input)-1]
	r.primed = true

	return outIdx
}

// OutputFramesNeeded returns an upper bound on the frames produced from
// inputFrames of input
func (r *Resampler) OutputFramesNeeded(inputFrames int) int {
	return int(float64(inputFrames+1)/r.ratio) + 1
}
