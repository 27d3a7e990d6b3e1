package sincnet

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedSampleRate reports a sample rate the fixed topology
	// cannot serve. The filterbank kernels, stage table and frame timing
	// are all designed against 16 kHz.
	ErrUnsupportedSampleRate = errors.New("sincnet: unsupported sample rate")

	// ErrChannelCount reports an Apply input whose channel axis is not 1.
	ErrChannelCount = errors.New("sincnet: waveform must have exactly one channel")
)

// UnsupportedRateError records the rejected rate of a failed construction.
// It unwraps to ErrUnsupportedSampleRate.
type UnsupportedRateError struct {
	Rate int
}

func (e *UnsupportedRateError) Error() string {
	return fmt.Sprintf("sincnet: unsupported sample rate %d Hz, the front-end is fixed to %d Hz",
		e.Rate, SupportedSampleRate)
}

func (e *UnsupportedRateError) Unwrap() error { return ErrUnsupportedSampleRate }
