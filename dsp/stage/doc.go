// Package stage provides the building blocks of the waveform front-end: a
// strided 1-D convolution over channel blocks, max pooling, per-channel
// affine instance normalization, leaky rectification, and absolute-value
// rectification.
//
// Each operation consumes and produces buffer.Block values. Convolution and
// pooling shrink the time axis and return new blocks; normalization,
// rectification, and the activations preserve shape and work in place on
// the block they are given. All operations are deterministic and safe for
// concurrent use as long as their parameters are not mutated.
package stage
