package sincfb

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-sincnet/dsp/window"
)

// Defaults of the band-edge constraints.
const (
	DefaultSampleRate = 16000.0
	DefaultMinLowHz   = 50.0
	DefaultMinBandHz  = 50.0

	// initLowHz anchors the mel grid used for default initialization.
	initLowHz = 30.0
)

// FilterBank is a fixed set of band-pass filters materialized from
// per-filter (low, band) parameter pairs.
type FilterBank struct {
	numFilters int
	kernelSize int
	sampleRate float64
	minLowHz   float64
	minBandHz  float64

	lowHz  []float64 // raw parameters, unconstrained
	bandHz []float64

	low     []float64 // constrained edges in Hz
	high    []float64
	kernels [][]float64
}

type config struct {
	sampleRate float64
	minLowHz   float64
	minBandHz  float64
	lowHz      []float64
	bandHz     []float64
}

func defaultConfig() config {
	return config{
		sampleRate: DefaultSampleRate,
		minLowHz:   DefaultMinLowHz,
		minBandHz:  DefaultMinBandHz,
	}
}

// Option configures a FilterBank.
type Option func(*config)

// WithSampleRate sets the sample rate the kernels are designed for.
// Non-positive values are ignored; defaults to 16000 Hz.
func WithSampleRate(hz float64) Option {
	return func(cfg *config) {
		if hz > 0 {
			cfg.sampleRate = hz
		}
	}
}

// WithMinLowHz sets the lower bound every low edge is pushed above.
// Negative values are ignored; defaults to 50 Hz.
func WithMinLowHz(hz float64) Option {
	return func(cfg *config) {
		if hz >= 0 {
			cfg.minLowHz = hz
		}
	}
}

// WithMinBandHz sets the minimum bandwidth every filter keeps.
// Negative values are ignored; defaults to 50 Hz.
func WithMinBandHz(hz float64) Option {
	return func(cfg *config) {
		if hz >= 0 {
			cfg.minBandHz = hz
		}
	}
}

// WithBandParams supplies trained (low, band) parameter pairs in Hz,
// replacing the mel-grid initialization. Both slices are copied and must
// have one entry per filter.
func WithBandParams(lowHz, bandHz []float64) Option {
	lowCp := append([]float64(nil), lowHz...)
	bandCp := append([]float64(nil), bandHz...)

	return func(cfg *config) {
		cfg.lowHz = lowCp
		cfg.bandHz = bandCp
	}
}

// New returns a filterbank of numFilters band-pass kernels of odd length
// kernelSize. Without WithBandParams the band edges come from a mel-spaced
// grid over the usable frequency range.
func New(numFilters, kernelSize int, opts ...Option) (*FilterBank, error) {
	if numFilters < 1 {
		return nil, fmt.Errorf("%w: %d", ErrFilterCount, numFilters)
	}
	if kernelSize < 1 || kernelSize%2 == 0 {
		return nil, fmt.Errorf("%w: %d", ErrKernelSize, kernelSize)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	fb := &FilterBank{
		numFilters: numFilters,
		kernelSize: kernelSize,
		sampleRate: cfg.sampleRate,
		minLowHz:   cfg.minLowHz,
		minBandHz:  cfg.minBandHz,
	}

	if cfg.lowHz != nil || cfg.bandHz != nil {
		if len(cfg.lowHz) != numFilters || len(cfg.bandHz) != numFilters {
			return nil, fmt.Errorf("%w: got %d low and %d band values, want %d",
				ErrBandCount, len(cfg.lowHz), len(cfg.bandHz), numFilters)
		}
		fb.lowHz = cfg.lowHz
		fb.bandHz = cfg.bandHz
	} else if err := fb.melInit(); err != nil {
		return nil, err
	}

	if err := fb.constrainEdges(); err != nil {
		return nil, err
	}
	fb.materialize()

	return fb, nil
}

// melInit spreads numFilters+1 grid points evenly on the mel scale and
// takes adjacent points as initial (low, band) pairs.
func (fb *FilterBank) melInit() error {
	highHz := fb.sampleRate/2 - (fb.minLowHz + fb.minBandHz)
	if highHz <= initLowHz {
		return fmt.Errorf("%w: %g Hz", ErrSampleRate, fb.sampleRate)
	}

	loMel := hzToMel(initLowHz)
	hiMel := hzToMel(highHz)

	hz := make([]float64, fb.numFilters+1)
	for i := range hz {
		frac := float64(i) / float64(fb.numFilters)
		hz[i] = melToHz(loMel + (hiMel-loMel)*frac)
	}

	fb.lowHz = make([]float64, fb.numFilters)
	fb.bandHz = make([]float64, fb.numFilters)
	for f := range fb.numFilters {
		fb.lowHz[f] = hz[f]
		fb.bandHz[f] = hz[f+1] - hz[f]
	}
	return nil
}

// constrainEdges maps raw parameters to usable band edges.
func (fb *FilterBank) constrainEdges() error {
	nyquist := fb.sampleRate / 2

	fb.low = make([]float64, fb.numFilters)
	fb.high = make([]float64, fb.numFilters)
	for f := range fb.numFilters {
		low := fb.minLowHz + math.Abs(fb.lowHz[f])
		high := min(max(low+fb.minBandHz+math.Abs(fb.bandHz[f]), fb.minLowHz), nyquist)
		if high <= low {
			return fmt.Errorf("%w: filter %d: [%g, %g] Hz", ErrBandRange, f, low, high)
		}
		fb.low[f] = low
		fb.high[f] = high
	}
	return nil
}

// materialize builds the windowed sinc kernel of every filter.
func (fb *FilterBank) materialize() {
	win := window.Generate(window.TypeHamming, fb.kernelSize)
	center := (fb.kernelSize - 1) / 2

	fb.kernels = make([][]float64, fb.numFilters)
	for f := range fb.numFilters {
		fl := fb.low[f] / fb.sampleRate
		fh := fb.high[f] / fb.sampleRate

		k := make([]float64, fb.kernelSize)
		for n := range k {
			t := float64(n - center)
			k[n] = 2*fh*sinc(2*fh*t) - 2*fl*sinc(2*fl*t)
		}

		vecmath.MulBlockInPlace(k, win)

		// Center tap to 1: the raw center value is 2*(fh-fl).
		scale := 1 / (2 * (fh - fl))
		for n := range k {
			k[n] *= scale
		}

		fb.kernels[f] = k
	}
}

// NumFilters returns the number of band-pass filters.
func (fb *FilterBank) NumFilters() int { return fb.numFilters }

// KernelSize returns the kernel length in samples.
func (fb *FilterBank) KernelSize() int { return fb.kernelSize }

// SampleRate returns the design sample rate in Hz.
func (fb *FilterBank) SampleRate() float64 { return fb.sampleRate }

// Band returns the constrained band edges of filter i in Hz.
// Panics if i is out of range.
func (fb *FilterBank) Band(i int) (lowHz, highHz float64) {
	if i < 0 || i >= fb.numFilters {
		panic("sincfb: filter index out of range")
	}
	return fb.low[i], fb.high[i]
}

// Params returns copies of the raw (low, band) parameter pairs in Hz.
func (fb *FilterBank) Params() (lowHz, bandHz []float64) {
	return append([]float64(nil), fb.lowHz...), append([]float64(nil), fb.bandHz...)
}

// Kernels returns a deep copy of the materialized filter kernels, indexed
// [filter][tap].
func (fb *FilterBank) Kernels() [][]float64 {
	out := make([][]float64, fb.numFilters)
	for f, k := range fb.kernels {
		out[f] = append([]float64(nil), k...)
	}
	return out
}

// sinc is the normalized sinc function sin(pi*x)/(pi*x).
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

// hzToMel converts Hz to mel (HTK formula).
func hzToMel(hz float64) float64 {
	return 2595 * math.Log10(1+hz/700)
}

// melToHz converts mel to Hz.
func melToHz(mel float64) float64 {
	return 700 * (math.Pow(10, mel/2595) - 1)
}
