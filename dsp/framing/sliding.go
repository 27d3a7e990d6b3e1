package framing

import "math"

// SlidingWindow maps frame indices to wall-clock time. Start is the onset
// of frame 0, Duration the span each frame summarizes, and Step the hop
// between consecutive frame onsets, all in seconds.
type SlidingWindow struct {
	Start    float64
	Duration float64
	Step     float64
}

// Window derives the sliding-window descriptor of a stage stack at the
// given sample rate: Duration is the receptive field of one frame, Step the
// growth from one frame to two, and Start is 0 (frame 0 begins at the first
// sample). The sample rate must be positive.
func Window(stages []StageSpec, sampleRate float64) SlidingWindow {
	one := ReceptiveFieldSize(1, stages)
	two := ReceptiveFieldSize(2, stages)
	return SlidingWindow{
		Start:    0,
		Duration: float64(one) / sampleRate,
		Step:     float64(two-one) / sampleRate,
	}
}

// Time returns the time span [start, end) of the given frame.
func (w SlidingWindow) Time(frame int) (start, end float64) {
	start = w.Start + float64(frame)*w.Step
	return start, start + w.Duration
}

// ClosestFrame returns the index of the frame whose center lies nearest to
// the given time, clamped to 0 for times before the first frame. The upper
// end is not clamped; callers know their frame count, the window does not.
func (w SlidingWindow) ClosestFrame(t float64) int {
	if w.Step == 0 {
		return 0
	}
	frame := int(math.Round((t - w.Start - w.Duration/2) / w.Step))
	return max(frame, 0)
}
