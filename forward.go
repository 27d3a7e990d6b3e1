package sincnet

import (
	"fmt"

	"github.com/cwbudde/algo-sincnet/dsp/buffer"
	"github.com/cwbudde/algo-sincnet/dsp/stage"
)

// Apply runs the front-end over a (batch, 1, samples) waveform block and
// returns a new (batch, OutChannels(), frames) feature block with frames
// equal to NumFrames(samples). The input block is left untouched.
//
// Each stage runs convolution, pooling, per-plane normalization and the
// leaky rectifier in order; the filterbank stage additionally rectifies
// to absolute values between convolution and pooling. The waveform
// itself is amplitude-normalized per instance before the first stage.
//
// Inputs too short for a single frame fail with a *framing.GeometryError
// naming the stage that ran out of samples.
func (fe *FrontEnd) Apply(waveform *buffer.Block) (*buffer.Block, error) {
	if waveform.Channels() != 1 {
		return nil, fmt.Errorf("%w: got %d", ErrChannelCount, waveform.Channels())
	}
	if _, err := fe.NumFrames(waveform.Length()); err != nil {
		return nil, err
	}

	cur := waveform.Copy()
	if _, err := fe.wavNorm.Apply(cur); err != nil {
		return nil, err
	}

	for s := range stageCount {
		out, err := fe.convs[s].Apply(cur)
		if err != nil {
			return nil, err
		}
		if s == 0 {
			stage.Rectify(out)
		}
		out, err = fe.pools[s].Apply(out)
		if err != nil {
			return nil, err
		}
		if _, err := fe.norms[s].Apply(out); err != nil {
			return nil, err
		}
		fe.leaky.Apply(out)
		cur = out
	}
	return cur, nil
}
