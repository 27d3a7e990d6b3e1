package stage

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sincnet/dsp/buffer"
	"github.com/cwbudde/algo-sincnet/internal/vecmath"
)

// DefaultEps is the variance floor of InstanceNorm.
const DefaultEps = 1e-5

// InstanceNorm normalizes each (batch, channel) plane to zero mean and
// unit variance over the time axis, then applies a learned per-channel
// affine map. Statistics come from the plane itself, so every instance in
// a batch is normalized independently.
type InstanceNorm struct {
	scale []float64
	shift []float64
	eps   float64
}

// NewInstanceNorm returns an instance norm over the given channel count
// with identity affine parameters (scale 1, shift 0).
func NewInstanceNorm(channels int) (*InstanceNorm, error) {
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidConfig, channels)
	}

	scale := make([]float64, channels)
	for i := range scale {
		scale[i] = 1
	}
	return &InstanceNorm{
		scale: scale,
		shift: make([]float64, channels),
		eps:   DefaultEps,
	}, nil
}

// NewInstanceNormAffine returns an instance norm using the given learned
// per-channel scale and shift. Both slices are copied and must have equal,
// positive length.
func NewInstanceNormAffine(scale, shift []float64) (*InstanceNorm, error) {
	if len(scale) == 0 || len(scale) != len(shift) {
		return nil, fmt.Errorf("%w: scale length %d, shift length %d",
			ErrInvalidConfig, len(scale), len(shift))
	}
	return &InstanceNorm{
		scale: append([]float64(nil), scale...),
		shift: append([]float64(nil), shift...),
		eps:   DefaultEps,
	}, nil
}

// Channels returns the channel count the norm was built for.
func (n *InstanceNorm) Channels() int { return len(n.scale) }

// Apply normalizes the block in place and returns it. Each plane is mapped
// to (x-mean)/sqrt(variance+eps)*scale + shift with biased variance over
// the time axis. Returns ErrChannelMismatch when the block's channel count
// differs from the norm's, and ErrInputTooShort for an empty time axis.
func (n *InstanceNorm) Apply(in *buffer.Block) (*buffer.Block, error) {
	if in.Channels() != len(n.scale) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrChannelMismatch, in.Channels(), len(n.scale))
	}
	if in.Length() < 1 {
		return nil, fmt.Errorf("%w: empty time axis", ErrInputTooShort)
	}

	for b := range in.Batch() {
		for c := range in.Channels() {
			plane := in.Plane(b, c)
			num := float64(len(plane))

			mean := vecmath.Sum(plane) / num

			variance := 0.0
			for _, v := range plane {
				d := v - mean
				variance += d * d
			}
			variance /= num

			gain := n.scale[c] / math.Sqrt(variance+n.eps)
			offset := n.shift[c] - mean*gain
			for i, v := range plane {
				plane[i] = v*gain + offset
			}
		}
	}
	return in, nil
}
