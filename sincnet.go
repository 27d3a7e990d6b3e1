package sincnet

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-sincnet/dsp/framing"
	"github.com/cwbudde/algo-sincnet/dsp/sincfb"
	"github.com/cwbudde/algo-sincnet/dsp/stage"
)

// SupportedSampleRate is the only sample rate the front-end accepts.
const SupportedSampleRate = 16000

const (
	stageCount = 3

	defaultNumFilters = 80
	defaultKernelSize = 251

	convChannels = 60
	convKernel   = 5

	poolKernel = 3
	poolStride = 3
)

// FrontEnd is the assembled waveform-to-features pipeline. All state is
// fixed at construction; Apply and the geometry queries are safe for
// concurrent use.
type FrontEnd struct {
	sampleRate int
	stride     int
	bank       FilterBank
	stages     []framing.StageSpec

	wavNorm *stage.InstanceNorm
	convs   [stageCount]*stage.Conv1D
	pools   [stageCount]*stage.MaxPool1D
	norms   [stageCount]*stage.InstanceNorm
	leaky   *stage.LeakyReLU

	frameMu   sync.RWMutex
	frameMemo map[int]int

	windowOnce sync.Once
	window     framing.SlidingWindow
}

// New assembles a front-end. Without options it carries the default
// 80-filter, 251-tap mel-initialized sinc filterbank at stride 1 and
// deterministic placeholder weights in the dense stages. The stage table
// driving NumFrames, ReceptiveFieldSize and ReceptiveField is derived
// from the layers actually built, so geometry and forward path cannot
// disagree.
func New(opts ...Option) (*FrontEnd, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.sampleRate != SupportedSampleRate {
		return nil, &UnsupportedRateError{Rate: cfg.sampleRate}
	}

	bank := cfg.bank
	if bank == nil {
		fb, err := sincfb.New(defaultNumFilters, defaultKernelSize)
		if err != nil {
			return nil, err
		}
		bank = fb
	}

	fe := &FrontEnd{
		sampleRate: cfg.sampleRate,
		stride:     cfg.stride,
		bank:       bank,
		frameMemo:  make(map[int]int),
	}

	// Stage 0: the filterbank kernels as a bias-free 1-to-N convolution.
	kernels := bank.Kernels()
	weight := make([][][]float64, len(kernels))
	for f, k := range kernels {
		weight[f] = [][]float64{k}
	}
	conv0, err := stage.NewConv1DFromWeights(weight, nil, cfg.stride)
	if err != nil {
		return nil, fmt.Errorf("sincnet: filterbank kernels: %w", err)
	}
	fe.convs[0] = conv0

	inCh := conv0.OutChannels()
	for s := 1; s < stageCount; s++ {
		var c *stage.Conv1D
		if p := cfg.convs[s]; p != nil {
			c, err = stage.NewConv1DFromWeights(p.weight, p.bias, 1)
			if err != nil {
				return nil, fmt.Errorf("sincnet: stage %d weights: %w", s, err)
			}
			if c.InChannels() != inCh {
				return nil, fmt.Errorf("sincnet: stage %d weights: %w: got %d input channels, want %d",
					s, stage.ErrChannelMismatch, c.InChannels(), inCh)
			}
		} else {
			c, err = stage.NewConv1D(inCh, convChannels, convKernel, 1)
			if err != nil {
				return nil, err
			}
		}
		fe.convs[s] = c
		inCh = c.OutChannels()
	}

	fe.wavNorm, err = stage.NewInstanceNorm(1)
	if err != nil {
		return nil, err
	}
	for s := range stageCount {
		fe.pools[s], err = stage.NewMaxPool1D(poolKernel, poolStride)
		if err != nil {
			return nil, err
		}
		fe.norms[s], err = stage.NewInstanceNorm(fe.convs[s].OutChannels())
		if err != nil {
			return nil, err
		}
	}
	fe.leaky = stage.NewLeakyReLU(stage.DefaultNegativeSlope)

	fe.stages = make([]framing.StageSpec, 0, 2*stageCount)
	for s := range stageCount {
		fe.stages = append(fe.stages,
			framing.StageSpec{Kernel: fe.convs[s].KernelSize(), Stride: fe.convs[s].Stride(), Dilation: 1},
			framing.StageSpec{Kernel: poolKernel, Stride: poolStride, Dilation: 1},
		)
	}

	return fe, nil
}

// NumFrames returns the number of feature frames a waveform of the given
// sample count produces. Counts are memoized per length; geometry
// failures are not cached, they are cheap and deterministic to recompute.
func (fe *FrontEnd) NumFrames(samples int) (int, error) {
	fe.frameMu.RLock()
	frames, ok := fe.frameMemo[samples]
	fe.frameMu.RUnlock()
	if ok {
		return frames, nil
	}

	frames, err := framing.NumFrames(samples, fe.stages)
	if err != nil {
		return 0, err
	}

	fe.frameMu.Lock()
	fe.frameMemo[samples] = frames
	fe.frameMu.Unlock()
	return frames, nil
}

// ReceptiveFieldSize returns the number of input samples that influence
// the given number of consecutive output frames. Frame counts below 1
// are treated as 1. Not the inverse of NumFrames: the forward fold
// floors away partial windows, the backward fold does not restore them.
func (fe *FrontEnd) ReceptiveFieldSize(frames int) int {
	return framing.ReceptiveFieldSize(frames, fe.stages)
}

// ReceptiveField returns the frame-to-seconds mapping of this front-end,
// built on first use and cached.
func (fe *FrontEnd) ReceptiveField() framing.SlidingWindow {
	fe.windowOnce.Do(func() {
		fe.window = framing.Window(fe.stages, float64(fe.sampleRate))
	})
	return fe.window
}

// SampleRate returns the sample rate the front-end was built for.
func (fe *FrontEnd) SampleRate() int { return fe.sampleRate }

// Stride returns the filterbank stage stride.
func (fe *FrontEnd) Stride() int { return fe.stride }

// OutChannels returns the channel count of the produced feature frames.
func (fe *FrontEnd) OutChannels() int { return fe.convs[stageCount-1].OutChannels() }

// Stages returns a copy of the stage table the geometry derives from.
func (fe *FrontEnd) Stages() []framing.StageSpec {
	return append([]framing.StageSpec(nil), fe.stages...)
}
