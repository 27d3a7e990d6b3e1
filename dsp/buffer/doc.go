// Package buffer provides the (batch, channel, time) sample block that the
// front-end stages pass between one another. A Block wraps one contiguous
// float64 slice; DSP kernels accept raw []float64 planes, and Plane bridges
// without copying.
package buffer
