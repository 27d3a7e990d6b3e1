package sincfb

import "testing"

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		if _, err := New(80, 251); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkResponse(b *testing.B) {
	fb, err := New(80, 251)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for b.Loop() {
		if _, err := fb.Response(40, 512); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMagnitudeDB(b *testing.B) {
	fb, err := New(80, 251)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for b.Loop() {
		_ = fb.MagnitudeDB(40, 1000)
	}
}
