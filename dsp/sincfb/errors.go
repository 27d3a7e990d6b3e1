package sincfb

import "errors"

// Errors returned by filterbank construction and analysis.
var (
	ErrFilterCount = errors.New("sincfb: filter count must be positive")
	ErrKernelSize  = errors.New("sincfb: kernel size must be odd and positive")
	ErrBandCount   = errors.New("sincfb: band parameter count does not match filter count")
	ErrSampleRate  = errors.New("sincfb: sample rate too low for mel initialization")
	ErrBandRange   = errors.New("sincfb: band edges collapse above Nyquist")
	ErrFilterIndex = errors.New("sincfb: filter index out of range")
	ErrFFTSize     = errors.New("sincfb: fft size must be a power of two covering the kernel")
)
