package stage

import (
	"fmt"

	"github.com/cwbudde/algo-sincnet/dsp/buffer"
	"github.com/cwbudde/algo-sincnet/dsp/conv"
	"github.com/cwbudde/algo-sincnet/internal/vecmath"
)

// MaxPool1D keeps the largest sample of each strided window, per channel.
// Windows that do not fit completely are dropped.
type MaxPool1D struct {
	kernel int
	stride int
}

// NewMaxPool1D returns a pooling stage with the given window and hop.
func NewMaxPool1D(kernel, stride int) (*MaxPool1D, error) {
	if kernel < 1 || stride < 1 {
		return nil, fmt.Errorf("%w: pool kernel %d stride %d", ErrInvalidConfig, kernel, stride)
	}
	return &MaxPool1D{kernel: kernel, stride: stride}, nil
}

// KernelSize returns the pooling window length.
func (p *MaxPool1D) KernelSize() int { return p.kernel }

// Stride returns the hop between pooling windows.
func (p *MaxPool1D) Stride() int { return p.stride }

// Apply pools the block and returns a new block with the same batch and
// channel axes and frames = (length-kernel)/stride + 1. Returns
// ErrInputTooShort if not a single window fits.
func (p *MaxPool1D) Apply(in *buffer.Block) (*buffer.Block, error) {
	outLen := conv.OutLen(in.Length(), p.kernel, p.stride)
	if outLen < 1 {
		return nil, fmt.Errorf("%w: %d samples, window %d", ErrInputTooShort, in.Length(), p.kernel)
	}

	out := buffer.New(in.Batch(), in.Channels(), outLen)
	for b := range in.Batch() {
		for c := range in.Channels() {
			src := in.Plane(b, c)
			dst := out.Plane(b, c)
			for i := range dst {
				off := i * p.stride
				dst[i] = vecmath.Max(src[off : off+p.kernel])
			}
		}
	}
	return out, nil
}
