package framing

import "fmt"

// StageSpec describes one length-changing stage of a pipeline: a strided
// convolution or pooling step. The record is symmetric between the two; the
// geometry arithmetic does not care which operation consumes the windows.
type StageSpec struct {
	Kernel   int
	Stride   int
	Padding  int
	Dilation int
}

// span returns in + 2*padding - dilation*(kernel-1) - 1, the number of
// valid start offsets minus one. Negative means no complete window fits.
func (s StageSpec) span(in int) int {
	return in + 2*s.Padding - s.Dilation*(s.Kernel-1) - 1
}

// Validate checks every stage for usable geometry: kernel and stride at
// least 1, dilation at least 1, padding non-negative. Returns
// ErrInvalidStage wrapped with the offending stage index.
func Validate(stages []StageSpec) error {
	for i, st := range stages {
		if st.Kernel < 1 || st.Stride < 1 || st.Dilation < 1 || st.Padding < 0 {
			return fmt.Errorf("%w: stage %d: kernel %d, stride %d, padding %d, dilation %d",
				ErrInvalidStage, i, st.Kernel, st.Stride, st.Padding, st.Dilation)
		}
	}
	return nil
}

// NumFrames folds the forward output-length formula over the stage list and
// returns the number of frames a waveform of the given length produces.
//
// Integer division truncates toward zero, which matches the required floor
// only for non-negative numerators. A negative span means the stage output
// would not be positive, so that case returns a *GeometryError instead of
// dividing; the error records the stage index and the length entering it.
// An empty stage list returns samples unchanged.
func NumFrames(samples int, stages []StageSpec) (int, error) {
	if err := Validate(stages); err != nil {
		return 0, err
	}
	n := samples
	for i, st := range stages {
		sp := st.span(n)
		if sp < 0 {
			return 0, &GeometryError{Stage: i, Input: n, Spec: st}
		}
		n = sp/st.Stride + 1
	}
	return n, nil
}

// ReceptiveFieldSize folds the backward input-length formula over the
// reversed stage list and returns the number of input samples that
// influence the given number of consecutive output frames. Frame counts
// below 1 are treated as 1.
//
// This is not the inverse of NumFrames: the forward fold floors away
// partial windows, so round trips shrink (see the package comment).
// Stages must satisfy Validate; the fold itself is total.
func ReceptiveFieldSize(frames int, stages []StageSpec) int {
	n := max(frames, 1)
	for i := len(stages) - 1; i >= 0; i-- {
		st := stages[i]
		n = (n-1)*st.Stride + st.Dilation*(st.Kernel-1) + 1 - 2*st.Padding
	}
	return n
}
