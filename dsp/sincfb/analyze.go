package sincfb

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Response returns the magnitude response |H[k]| of filter i sampled on an
// fftSize-point grid. fftSize must be a power of two no smaller than the
// kernel size. The result covers bins 0..fftSize/2, so bin k corresponds to
// k*SampleRate()/fftSize Hz.
func (fb *FilterBank) Response(i, fftSize int) ([]float64, error) {
	if i < 0 || i >= fb.numFilters {
		return nil, fmt.Errorf("%w: %d", ErrFilterIndex, i)
	}
	if fftSize < fb.kernelSize || !isPowerOfTwo(fftSize) {
		return nil, fmt.Errorf("%w: %d", ErrFFTSize, fftSize)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, err
	}

	in := make([]complex128, fftSize)
	for n, c := range fb.kernels[i] {
		in[n] = complex(c, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, err
	}

	half := fftSize/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)
	for k := range half {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mag := make([]float64, half)
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}

// MagnitudeDB evaluates the response of filter i at a single frequency by
// direct DTFT evaluation and returns it in dB. Unlike Response it is not
// restricted to an FFT bin grid. Panics if i is out of range.
func (fb *FilterBank) MagnitudeDB(i int, freqHz float64) float64 {
	if i < 0 || i >= fb.numFilters {
		panic("sincfb: filter index out of range")
	}

	w := 2 * math.Pi * freqHz / fb.sampleRate

	var h complex128
	for k, c := range fb.kernels[i] {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}

	return 20 * math.Log10(cmplx.Abs(h))
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
