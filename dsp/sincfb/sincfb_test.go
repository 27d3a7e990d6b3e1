package sincfb

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-sincnet/internal/testutil"
)

func TestNewDefaults(t *testing.T) {
	fb, err := New(80, 251)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := fb.NumFilters(); got != 80 {
		t.Fatalf("NumFilters() = %d, want 80", got)
	}
	if got := fb.KernelSize(); got != 251 {
		t.Fatalf("KernelSize() = %d, want 251", got)
	}
	if got := fb.SampleRate(); got != 16000 {
		t.Fatalf("SampleRate() = %v, want 16000", got)
	}

	kernels := fb.Kernels()
	if len(kernels) != 80 {
		t.Fatalf("len(Kernels()) = %d, want 80", len(kernels))
	}
	for f, k := range kernels {
		if len(k) != 251 {
			t.Fatalf("filter %d: kernel length %d, want 251", f, len(k))
		}
		testutil.RequireFinite(t, k)
	}
}

func TestDefaultBandEdges(t *testing.T) {
	fb, err := New(80, 251)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// The lowest edge is minLowHz + the 30 Hz mel-grid anchor.
	low0, _ := fb.Band(0)
	testutil.RequireNearlyEqual(t, low0, 80, 1e-6)

	// The top edge reaches the Nyquist clamp.
	_, highTop := fb.Band(79)
	if highTop > 8000 || highTop < 7999.9 {
		t.Fatalf("Band(79) high = %v, want about 8000", highTop)
	}

	prevLow, prevHigh := math.Inf(-1), math.Inf(-1)
	for f := range 80 {
		low, high := fb.Band(f)
		if low >= high {
			t.Fatalf("filter %d: low %v >= high %v", f, low, high)
		}
		if low < DefaultMinLowHz || high > 8000 {
			t.Fatalf("filter %d: band [%v, %v] outside [50, 8000]", f, low, high)
		}
		if low <= prevLow || high <= prevHigh {
			t.Fatalf("filter %d: edges not strictly increasing: [%v, %v] after [%v, %v]",
				f, low, high, prevLow, prevHigh)
		}
		prevLow, prevHigh = low, high
	}
}

func TestCenterTapNormalization(t *testing.T) {
	fb, err := New(80, 251)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	center := (fb.KernelSize() - 1) / 2
	for f, k := range fb.Kernels() {
		if diff := math.Abs(k[center] - 1); diff > 1e-12 {
			t.Fatalf("filter %d: center tap %v, want 1", f, k[center])
		}
	}
}

func TestKernelSymmetry(t *testing.T) {
	fb, err := New(16, 101)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for f, k := range fb.Kernels() {
		for n := range len(k) / 2 {
			m := len(k) - 1 - n
			if diff := math.Abs(k[n] - k[m]); diff > 1e-12 {
				t.Fatalf("filter %d: taps %d and %d differ: %v vs %v", f, n, m, k[n], k[m])
			}
		}
	}
}

func TestDeterministicConstruction(t *testing.T) {
	a, err := New(80, 251)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b, err := New(80, 251)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ka, kb := a.Kernels(), b.Kernels()
	for f := range ka {
		for n := range ka[f] {
			if ka[f][n] != kb[f][n] {
				t.Fatalf("filter %d tap %d: %v != %v", f, n, ka[f][n], kb[f][n])
			}
		}
	}
}

func TestKernelsReturnsCopy(t *testing.T) {
	fb, err := New(4, 51)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	k := fb.Kernels()
	k[0][0] = 999

	fresh := fb.Kernels()
	if fresh[0][0] == 999 {
		t.Fatal("mutating the returned kernels changed bank state")
	}
}

func TestParamsReturnsCopy(t *testing.T) {
	fb, err := New(4, 51)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	lowHz, bandHz := fb.Params()
	if len(lowHz) != 4 || len(bandHz) != 4 {
		t.Fatalf("Params() lengths = %d, %d, want 4, 4", len(lowHz), len(bandHz))
	}

	lowHz[0] = -1
	bandHz[0] = -1

	low2, band2 := fb.Params()
	if low2[0] == -1 || band2[0] == -1 {
		t.Fatal("mutating the returned params changed bank state")
	}
}

func TestWithBandParams(t *testing.T) {
	fb, err := New(2, 65,
		WithBandParams([]float64{100, 1000}, []float64{200, 500}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	low0, high0 := fb.Band(0)
	if low0 != 150 || high0 != 400 {
		t.Fatalf("Band(0) = [%v, %v], want [150, 400]", low0, high0)
	}

	low1, high1 := fb.Band(1)
	if low1 != 1050 || high1 != 1600 {
		t.Fatalf("Band(1) = [%v, %v], want [1050, 1600]", low1, high1)
	}

	lowHz, bandHz := fb.Params()
	if lowHz[0] != 100 || lowHz[1] != 1000 || bandHz[0] != 200 || bandHz[1] != 500 {
		t.Fatalf("Params() = %v, %v, want the supplied values", lowHz, bandHz)
	}
}

func TestNegativeBandParams(t *testing.T) {
	// Sign is ignored: only magnitudes enter the constraints.
	fb, err := New(1, 65, WithBandParams([]float64{-100}, []float64{-200}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	low, high := fb.Band(0)
	if low != 150 || high != 400 {
		t.Fatalf("Band(0) = [%v, %v], want [150, 400]", low, high)
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name       string
		numFilters int
		kernelSize int
		opts       []Option
		want       error
	}{
		{"zero filters", 0, 251, nil, ErrFilterCount},
		{"negative filters", -1, 251, nil, ErrFilterCount},
		{"zero kernel", 80, 0, nil, ErrKernelSize},
		{"even kernel", 80, 250, nil, ErrKernelSize},
		{"negative kernel", 80, -3, nil, ErrKernelSize},
		{
			"band count mismatch", 2, 251,
			[]Option{WithBandParams([]float64{100}, []float64{200})},
			ErrBandCount,
		},
		{
			"sample rate too low", 80, 251,
			[]Option{WithSampleRate(150)},
			ErrSampleRate,
		},
		{
			"band above nyquist", 1, 251,
			[]Option{WithBandParams([]float64{9000}, []float64{100})},
			ErrBandRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.numFilters, tt.kernelSize, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("New error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestOptionGuards(t *testing.T) {
	// Invalid option arguments fall back to the defaults.
	fb, err := New(80, 251,
		WithSampleRate(0),
		WithSampleRate(-8000),
		WithMinLowHz(-5),
		WithMinBandHz(-5),
		nil,
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := fb.SampleRate(); got != 16000 {
		t.Fatalf("SampleRate() = %v, want 16000", got)
	}

	low0, _ := fb.Band(0)
	testutil.RequireNearlyEqual(t, low0, 80, 1e-6)
}

func TestCustomSampleRate(t *testing.T) {
	fb, err := New(40, 101, WithSampleRate(8000))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := fb.SampleRate(); got != 8000 {
		t.Fatalf("SampleRate() = %v, want 8000", got)
	}

	for f := range fb.NumFilters() {
		low, high := fb.Band(f)
		if low >= high || high > 4000 {
			t.Fatalf("filter %d: band [%v, %v] invalid for 8 kHz rate", f, low, high)
		}
	}
}

func TestBandPanicsOutOfRange(t *testing.T) {
	fb, err := New(4, 51)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, i := range []int{-1, 4} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("Band(%d) did not panic", i)
				}
			}()
			fb.Band(i)
		}()
	}
}

func TestMelScaleRoundTrip(t *testing.T) {
	for _, hz := range []float64{30, 100, 440, 1000, 4000, 7900} {
		got := melToHz(hzToMel(hz))
		testutil.RequireNearlyEqual(t, got, hz, hz*1e-9)
	}
}

func TestSinc(t *testing.T) {
	if got := sinc(0); got != 1 {
		t.Fatalf("sinc(0) = %v, want 1", got)
	}
	// Integer arguments are zero crossings.
	for _, x := range []float64{1, 2, -3} {
		if got := math.Abs(sinc(x)); got > 1e-15 {
			t.Fatalf("sinc(%v) = %v, want 0", x, got)
		}
	}
	testutil.RequireNearlyEqual(t, sinc(0.5), 2/math.Pi, 1e-15)
}
