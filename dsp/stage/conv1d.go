package stage

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-sincnet/dsp/buffer"
	"github.com/cwbudde/algo-sincnet/dsp/conv"
	"github.com/cwbudde/algo-sincnet/internal/vecmath"
)

// initSeed fixes the default parameter draw so that independently
// constructed layers with the same shape are identical.
const initSeed = 42

// Conv1D is a learned multi-channel convolution layer: each output channel
// correlates every input channel with its own kernel, sums the results, and
// adds an optional per-channel bias. Parameters are fixed at construction.
type Conv1D struct {
	weight [][][]float64 // [out][in][kernel]
	bias   []float64     // nil means no bias term
	inCh   int
	outCh  int
	kernel int
	stride int
}

// NewConv1D returns a convolution layer with deterministic default
// parameters: weights and biases drawn uniformly from
// [-1/sqrt(in*kernel), 1/sqrt(in*kernel)] with a fixed seed. The draw is a
// stand-in until trained parameters arrive via NewConv1DFromWeights.
func NewConv1D(inCh, outCh, kernel, stride int) (*Conv1D, error) {
	if inCh < 1 || outCh < 1 || kernel < 1 || stride < 1 {
		return nil, fmt.Errorf("%w: conv %dx%d kernel %d stride %d",
			ErrInvalidConfig, inCh, outCh, kernel, stride)
	}

	rng := rand.New(rand.NewSource(initSeed))
	bound := 1 / math.Sqrt(float64(inCh*kernel))

	weight := make([][][]float64, outCh)
	for o := range weight {
		weight[o] = make([][]float64, inCh)
		for i := range weight[o] {
			k := make([]float64, kernel)
			for j := range k {
				k[j] = (rng.Float64()*2 - 1) * bound
			}
			weight[o][i] = k
		}
	}

	bias := make([]float64, outCh)
	for o := range bias {
		bias[o] = (rng.Float64()*2 - 1) * bound
	}

	return &Conv1D{
		weight: weight,
		bias:   bias,
		inCh:   inCh,
		outCh:  outCh,
		kernel: kernel,
		stride: stride,
	}, nil
}

// NewConv1DFromWeights returns a convolution layer using the given
// parameters. The weight tensor is indexed [out][in][kernel] and must be
// rectangular; bias may be nil for a bias-free layer or must have one entry
// per output channel. Both are copied, so callers may reuse their slices.
func NewConv1DFromWeights(weight [][][]float64, bias []float64, stride int) (*Conv1D, error) {
	if stride < 1 {
		return nil, fmt.Errorf("%w: stride %d", ErrInvalidConfig, stride)
	}
	if len(weight) == 0 || len(weight[0]) == 0 || len(weight[0][0]) == 0 {
		return nil, fmt.Errorf("%w: empty weight tensor", ErrInvalidConfig)
	}

	outCh := len(weight)
	inCh := len(weight[0])
	kernel := len(weight[0][0])

	cp := make([][][]float64, outCh)
	for o, plane := range weight {
		if len(plane) != inCh {
			return nil, fmt.Errorf("%w: output %d has %d input planes, want %d",
				ErrRaggedWeights, o, len(plane), inCh)
		}
		cp[o] = make([][]float64, inCh)
		for i, k := range plane {
			if len(k) != kernel {
				return nil, fmt.Errorf("%w: kernel (%d,%d) has length %d, want %d",
					ErrRaggedWeights, o, i, len(k), kernel)
			}
			cp[o][i] = append([]float64(nil), k...)
		}
	}

	var biasCp []float64
	if bias != nil {
		if len(bias) != outCh {
			return nil, fmt.Errorf("%w: bias length %d, want %d", ErrInvalidConfig, len(bias), outCh)
		}
		biasCp = append([]float64(nil), bias...)
	}

	return &Conv1D{
		weight: cp,
		bias:   biasCp,
		inCh:   inCh,
		outCh:  outCh,
		kernel: kernel,
		stride: stride,
	}, nil
}

// InChannels returns the expected input channel count.
func (c *Conv1D) InChannels() int { return c.inCh }

// OutChannels returns the produced channel count.
func (c *Conv1D) OutChannels() int { return c.outCh }

// KernelSize returns the kernel length in samples.
func (c *Conv1D) KernelSize() int { return c.kernel }

// Stride returns the hop between kernel placements.
func (c *Conv1D) Stride() int { return c.stride }

// Apply convolves the block and returns a new (batch, out, frames) block
// with frames = (length-kernel)/stride + 1. Returns ErrChannelMismatch if
// the block's channel count differs from the layer's input count and
// ErrInputTooShort if not a single kernel placement fits.
func (c *Conv1D) Apply(in *buffer.Block) (*buffer.Block, error) {
	if in.Channels() != c.inCh {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrChannelMismatch, in.Channels(), c.inCh)
	}

	outLen := conv.OutLen(in.Length(), c.kernel, c.stride)
	if outLen < 1 {
		return nil, fmt.Errorf("%w: %d samples, kernel %d", ErrInputTooShort, in.Length(), c.kernel)
	}

	out := buffer.New(in.Batch(), c.outCh, outLen)
	for b := range in.Batch() {
		for o := range c.outCh {
			plane := out.Plane(b, o)
			if c.bias != nil {
				vecmath.AddScalarInPlace(plane, c.bias[o])
			}
			for i := range c.inCh {
				conv.ValidStridedAccumTo(plane, in.Plane(b, i), c.weight[o][i], c.stride)
			}
		}
	}
	return out, nil
}
