package stage

import (
	"github.com/cwbudde/algo-sincnet/dsp/buffer"
	"github.com/cwbudde/algo-sincnet/internal/vecmath"
)

// DefaultNegativeSlope is the leak factor of LeakyReLU.
const DefaultNegativeSlope = 0.01

// LeakyReLU passes positive samples through and multiplies negative ones
// by a small slope, keeping a usable gradient on the negative side.
type LeakyReLU struct {
	slope float64
}

// NewLeakyReLU returns a leaky rectifier with the given negative-side
// slope. Slope 0 is a plain rectifier.
func NewLeakyReLU(slope float64) *LeakyReLU {
	return &LeakyReLU{slope: slope}
}

// Slope returns the negative-side slope.
func (l *LeakyReLU) Slope() float64 { return l.slope }

// Apply rectifies the block in place and returns it.
func (l *LeakyReLU) Apply(in *buffer.Block) *buffer.Block {
	data := in.Data()
	for i, v := range data {
		if v < 0 {
			data[i] = v * l.slope
		}
	}
	return in
}

// Rectify replaces every sample with its absolute value, in place. The
// filterbank stage applies it before pooling so that opposite-phase
// responses do not cancel inside a pooling window.
func Rectify(in *buffer.Block) *buffer.Block {
	vecmath.AbsInPlace(in.Data())
	return in
}
