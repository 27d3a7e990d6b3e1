// Command sincinfo prints frame geometry and band layout of the sinc
// waveform front-end, and optionally runs it over a WAV file.
//
// Usage:
//
//	sincinfo [flags]
//
// Without flags it reports the geometry of one second of audio.
//
// Examples:
//
//	sincinfo -samples 16000,32000
//	sincinfo -duration 0.5,2
//	sincinfo -stride 2 -samples 16000
//	sincinfo -bands
//	sincinfo -wav speech.wav
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	sincnet "github.com/cwbudde/algo-sincnet"
	"github.com/cwbudde/algo-sincnet/dsp/buffer"
	"github.com/cwbudde/algo-sincnet/dsp/sincfb"
	"github.com/cwbudde/algo-sincnet/internal/vecmath"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func main() {
	rate := flag.Int("rate", 16000, "sample rate of the incoming audio in Hz")
	stride := flag.Int("stride", 1, "filterbank stage stride")
	samplesFlag := flag.String("samples", "", "comma-separated input lengths in samples")
	durationFlag := flag.String("duration", "", "comma-separated input durations in seconds")
	bands := flag.Bool("bands", false, "print the filterbank band table")
	wavPath := flag.String("wav", "", "WAV file to run through the front-end")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sincinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints frame geometry and band layout of the sinc waveform front-end.\n")
		fmt.Fprintf(os.Stderr, "Without flags it reports the geometry of one second of audio.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sincinfo -samples 16000,32000\n")
		fmt.Fprintf(os.Stderr, "  sincinfo -stride 2 -duration 0.5,2\n")
		fmt.Fprintf(os.Stderr, "  sincinfo -bands\n")
		fmt.Fprintf(os.Stderr, "  sincinfo -wav speech.wav\n")
	}
	flag.Parse()

	fe, err := sincnet.New(sincnet.WithSampleRate(*rate), sincnet.WithStride(*stride))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	counts, err := parseCounts(*samplesFlag, *durationFlag, fe.SampleRate())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if len(counts) == 0 && !*bands && *wavPath == "" {
		counts = []int{fe.SampleRate()}
	}

	printSummary(fe)

	if len(counts) > 0 {
		printGeometry(fe, counts)
	}
	if *bands {
		if err := printBands(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
	if *wavPath != "" {
		if err := runWAV(fe, *wavPath); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

// parseCounts merges the -samples and -duration lists into sample counts.
func parseCounts(samplesFlag, durationFlag string, rate int) ([]int, error) {
	var counts []int

	for _, field := range splitList(samplesFlag) {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid sample count %q", field)
		}
		counts = append(counts, n)
	}

	for _, field := range splitList(durationFlag) {
		sec, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q", field)
		}
		counts = append(counts, int(math.Round(sec*float64(rate))))
	}

	return counts, nil
}

func splitList(s string) []string {
	var fields []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

func printSummary(fe *sincnet.FrontEnd) {
	win := fe.ReceptiveField()
	one := fe.ReceptiveFieldSize(1)
	step := fe.ReceptiveFieldSize(2) - one

	fmt.Printf("front-end: %d Hz, stride %d, %d output channels\n",
		fe.SampleRate(), fe.Stride(), fe.OutChannels())
	fmt.Printf("window: %d samples (%gs), step %d samples (%gs)\n\n",
		one, win.Duration, step, win.Step)
}

func printGeometry(fe *sincnet.FrontEnd, counts []int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Samples\tSeconds\tFrames\tCovered\tUnused\n")
	fmt.Fprintf(tw, "-------\t-------\t------\t-------\t------\n")

	minimum := fe.ReceptiveFieldSize(1)
	for _, n := range counts {
		seconds := float64(n) / float64(fe.SampleRate())

		frames, err := fe.NumFrames(n)
		if err != nil {
			fmt.Fprintf(tw, "%d\t%.4f\ttoo short, need >= %d\t\t\n", n, seconds, minimum)
			continue
		}

		covered := fe.ReceptiveFieldSize(frames)
		fmt.Fprintf(tw, "%d\t%.4f\t%d\t%d\t%d\n", n, seconds, frames, covered, n-covered)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
	fmt.Println()
}

func printBands() error {
	fb, err := sincfb.New(80, 251)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Band\tLow [Hz]\tHigh [Hz]\tWidth [Hz]\n")
	fmt.Fprintf(tw, "----\t--------\t---------\t----------\n")

	for i := range fb.NumFilters() {
		low, high := fb.Band(i)
		fmt.Fprintf(tw, "%d\t%.1f\t%.1f\t%.1f\n", i, low, high, high-low)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	fmt.Println()
	return nil
}

func runWAV(fe *sincnet.FrontEnd, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return fmt.Errorf("%s: not a valid WAV file", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if buf.Format.SampleRate != fe.SampleRate() {
		return fmt.Errorf("%s: sample rate %d Hz, front-end expects %d Hz (resample first)",
			path, buf.Format.SampleRate, fe.SampleRate())
	}

	samples := monoFloat(buf, int(dec.BitDepth))
	features, err := fe.Apply(buffer.Mono(samples))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	win := fe.ReceptiveField()
	firstStart, firstEnd := win.Time(0)
	lastStart, lastEnd := win.Time(features.Length() - 1)

	fmt.Printf("%s: %d channel(s), %d samples at %d Hz, peak %.3f\n",
		path, buf.Format.NumChannels, len(samples), buf.Format.SampleRate, vecmath.MaxAbs(samples))
	fmt.Printf("features: %d x %d\n", features.Channels(), features.Length())
	fmt.Printf("first frame %.4fs-%.4fs, last frame %.4fs-%.4fs\n",
		firstStart, firstEnd, lastStart, lastEnd)
	return nil
}

// monoFloat downmixes an integer PCM buffer to one float64 channel in
// [-1, 1]. 8-bit WAV samples are unsigned and get re-centered first.
func monoFloat(buf *audio.IntBuffer, bitDepth int) []float64 {
	channels := buf.Format.NumChannels
	if channels < 1 {
		channels = 1
	}
	if bitDepth < 8 {
		bitDepth = 16
	}

	offset := 0
	if bitDepth == 8 {
		offset = 128
	}

	frames := len(buf.Data) / channels
	out := make([]float64, frames)
	for i := range out {
		sum := 0
		for c := range channels {
			sum += buf.Data[i*channels+c] - offset
		}
		out[i] = float64(sum) / float64(channels)
	}
	vecmath.ScaleBlockInPlace(out, 1/float64(int(1)<<(bitDepth-1)))
	return out
}
