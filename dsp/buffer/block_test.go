package buffer

import (
	"errors"
	"testing"
)

func TestNewDimensions(t *testing.T) {
	b := New(2, 3, 4)
	if b.Batch() != 2 || b.Channels() != 3 || b.Length() != 4 {
		t.Fatalf("dims = (%d, %d, %d), want (2, 3, 4)", b.Batch(), b.Channels(), b.Length())
	}
	if len(b.Data()) != 24 {
		t.Fatalf("len(Data()) = %d, want 24", len(b.Data()))
	}
	for i, v := range b.Data() {
		if v != 0 {
			t.Fatalf("Data()[%d] = %v, want 0", i, v)
		}
	}
}

func TestNewClampsNegativeDims(t *testing.T) {
	b := New(-1, 3, 4)
	if b.Batch() != 0 || len(b.Data()) != 0 {
		t.Fatalf("batch = %d, len = %d, want 0, 0", b.Batch(), len(b.Data()))
	}
}

func TestFromSlice(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	b, err := FromSlice(data, 1, 2, 3)
	if err != nil {
		t.Fatalf("FromSlice error: %v", err)
	}

	// Aliasing: writes through the slice are visible in the block.
	data[0] = 9
	if b.Plane(0, 0)[0] != 9 {
		t.Fatalf("Plane(0,0)[0] = %v, want 9", b.Plane(0, 0)[0])
	}
}

func TestFromSliceSizeMismatch(t *testing.T) {
	_, err := FromSlice(make([]float64, 5), 1, 2, 3)
	if !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("err = %v, want ErrSizeMismatch", err)
	}
}

func TestMono(t *testing.T) {
	b := Mono([]float64{1, 2, 3})
	if b.Batch() != 1 || b.Channels() != 1 || b.Length() != 3 {
		t.Fatalf("dims = (%d, %d, %d), want (1, 1, 3)", b.Batch(), b.Channels(), b.Length())
	}
	if b.Plane(0, 0)[2] != 3 {
		t.Fatalf("Plane(0,0)[2] = %v, want 3", b.Plane(0, 0)[2])
	}
}

func TestPlaneLayout(t *testing.T) {
	b := New(2, 2, 3)
	for i := range b.Data() {
		b.Data()[i] = float64(i)
	}

	// Plane (batch, channel) starts at (batch*channels + channel) * length.
	cases := []struct {
		batch, channel int
		first          float64
	}{
		{0, 0, 0},
		{0, 1, 3},
		{1, 0, 6},
		{1, 1, 9},
	}
	for _, tc := range cases {
		p := b.Plane(tc.batch, tc.channel)
		if len(p) != 3 {
			t.Fatalf("len(Plane(%d,%d)) = %d, want 3", tc.batch, tc.channel, len(p))
		}
		if p[0] != tc.first {
			t.Errorf("Plane(%d,%d)[0] = %v, want %v", tc.batch, tc.channel, p[0], tc.first)
		}
	}
}

func TestPlaneOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Plane() did not panic on out-of-range channel")
		}
	}()
	New(1, 2, 3).Plane(0, 2)
}

func TestZero(t *testing.T) {
	b := Mono([]float64{1, 2, 3})
	b.Zero()
	for i, v := range b.Data() {
		if v != 0 {
			t.Fatalf("Data()[%d] = %v, want 0", i, v)
		}
	}
}

func TestCopyIsDeep(t *testing.T) {
	b := Mono([]float64{1, 2, 3})
	c := b.Copy()
	c.Plane(0, 0)[0] = 42
	if b.Plane(0, 0)[0] != 1 {
		t.Fatalf("Copy() shares backing storage")
	}
	if c.Batch() != 1 || c.Channels() != 1 || c.Length() != 3 {
		t.Fatalf("copy dims = (%d, %d, %d), want (1, 1, 3)", c.Batch(), c.Channels(), c.Length())
	}
}
