// Package framing derives frame counts, receptive fields, and wall-clock
// frame timing for strided convolution and pooling pipelines.
//
// Each stage is described by one StageSpec record. A forward fold over the
// stage list maps an input length to the number of output frames:
//
//	out = floor((in + 2*padding - dilation*(kernel-1) - 1) / stride) + 1
//
// A backward fold over the reversed stage list maps a frame count to the
// number of input samples that influence those frames:
//
//	in = (out-1)*stride + dilation*(kernel-1) + 1 - 2*padding
//
// The two directions are not inverses. The forward count floors away
// partial windows, while the backward span reports the full influence
// region of the frames that do exist. A 16000-sample input through the
// default front-end stack yields 581 frames whose combined receptive field
// covers 15985 samples; the trailing samples fall into no complete
// analysis window, so ReceptiveFieldSize(NumFrames(n)) <= n in general.
//
// Window converts the one-frame and two-frame receptive fields into a
// SlidingWindow descriptor (start, duration, step in seconds) that maps
// frame indices to wall-clock time spans.
package framing
