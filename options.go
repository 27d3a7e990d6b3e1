package sincnet

// FilterBank is the read-only view the front-end needs from its first
// stage: how many band filters it has, their kernel length in samples,
// and the materialized kernels indexed [filter][tap]. The default
// implementation is dsp/sincfb; anything satisfying this interface can
// replace it, and the stage table adapts to its geometry.
type FilterBank interface {
	NumFilters() int
	KernelSize() int
	Kernels() [][]float64
}

type convParams struct {
	weight [][][]float64
	bias   []float64
}

type config struct {
	sampleRate int
	stride     int
	bank       FilterBank
	convs      [stageCount]*convParams
}

func defaultConfig() config {
	return config{
		sampleRate: SupportedSampleRate,
		stride:     1,
	}
}

// Option configures a FrontEnd.
type Option func(*config)

// WithSampleRate declares the sample rate of the incoming waveforms.
// The topology is fixed to 16000 Hz, so any other value makes New fail
// with an *UnsupportedRateError rather than silently misinterpreting
// the input.
func WithSampleRate(hz int) Option {
	return func(cfg *config) {
		cfg.sampleRate = hz
	}
}

// WithStride sets the filterbank stage stride, trading frame rate for
// compute. Values below 1 are ignored; defaults to 1.
func WithStride(stride int) Option {
	return func(cfg *config) {
		if stride >= 1 {
			cfg.stride = stride
		}
	}
}

// WithFilterBank replaces the default mel-initialized sinc filterbank.
// A nil bank is ignored.
func WithFilterBank(bank FilterBank) Option {
	return func(cfg *config) {
		if bank != nil {
			cfg.bank = bank
		}
	}
}

// WithConvWeights loads trained parameters for dense convolution stage 1
// or 2. The weight tensor is indexed [out][in][kernel]; bias may be nil.
// Stage indices outside 1..2 are ignored; shape problems surface as New
// errors.
func WithConvWeights(stageIndex int, weight [][][]float64, bias []float64) Option {
	return func(cfg *config) {
		if stageIndex >= 1 && stageIndex < stageCount {
			cfg.convs[stageIndex] = &convParams{weight: weight, bias: bias}
		}
	}
}
