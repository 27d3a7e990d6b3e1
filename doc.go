// Package sincnet converts raw 16 kHz waveforms into learned feature
// frames with a fixed three-stage front-end: a parameterized sinc
// band-pass filterbank followed by two dense convolution layers, each
// stage closed by max-pooling, per-instance normalization and a leaky
// rectifier. The filterbank output is rectified to its absolute value
// before pooling.
//
// The pipeline takes (batch, 1, samples) blocks and produces
// (batch, 60, frames) blocks. Frame geometry is exposed without running
// the pipeline: NumFrames gives the frame count of an input length,
// ReceptiveFieldSize the input span behind a span of frames, and
// ReceptiveField the frame-to-seconds mapping. All three share one stage
// table with the forward path, so counts and wall-clock positions cannot
// drift from what Apply computes.
//
// A FrontEnd is immutable after construction and safe for concurrent
// use. Trained parameters load through options; without them the layers
// carry deterministic placeholder weights, so two independently built
// front-ends produce bit-identical output.
package sincnet
