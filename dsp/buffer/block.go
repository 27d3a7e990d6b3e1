package buffer

import "errors"

// ErrSizeMismatch is returned by FromSlice when the slice length does not
// equal batch * channels * length.
var ErrSizeMismatch = errors.New("buffer: data length does not match dimensions")

// Block is a flat float64 slice viewed as a (batch, channel, time) sample
// block. Index (b, c, t) maps to data[(b*channels+c)*length + t], so each
// (batch, channel) pair owns one contiguous time series.
type Block struct {
	data     []float64
	batch    int
	channels int
	length   int
}

// New returns a zero-filled Block with the given dimensions.
// Non-positive dimensions are clamped to 0.
func New(batch, channels, length int) *Block {
	batch = max(batch, 0)
	channels = max(channels, 0)
	length = max(length, 0)
	return &Block{
		data:     make([]float64, batch*channels*length),
		batch:    batch,
		channels: channels,
		length:   length,
	}
}

// FromSlice wraps an existing slice without copying. Mutations to the slice
// are visible through the Block and vice versa. Returns ErrSizeMismatch if
// len(data) != batch*channels*length.
func FromSlice(data []float64, batch, channels, length int) (*Block, error) {
	if batch < 0 || channels < 0 || length < 0 || len(data) != batch*channels*length {
		return nil, ErrSizeMismatch
	}
	return &Block{data: data, batch: batch, channels: channels, length: length}, nil
}

// Mono wraps a single waveform as a (1, 1, len(samples)) block without
// copying.
func Mono(samples []float64) *Block {
	return &Block{data: samples, batch: 1, channels: 1, length: len(samples)}
}

// Batch returns the number of instances in the block.
func (b *Block) Batch() int {
	return b.batch
}

// Channels returns the number of channels per instance.
func (b *Block) Channels() int {
	return b.channels
}

// Length returns the number of samples per (batch, channel) plane.
func (b *Block) Length() int {
	return b.length
}

// Data returns the underlying flat slice.
func (b *Block) Data() []float64 {
	return b.data
}

// Plane returns the contiguous time series of one (batch, channel) pair.
// The returned slice aliases the block; writes are visible to both.
// Panics if either index is out of range.
func (b *Block) Plane(batch, channel int) []float64 {
	if batch < 0 || batch >= b.batch || channel < 0 || channel >= b.channels {
		panic("buffer: plane index out of range")
	}
	off := (batch*b.channels + channel) * b.length
	return b.data[off : off+b.length]
}

// Zero sets all samples to 0.
func (b *Block) Zero() {
	for i := range b.data {
		b.data[i] = 0
	}
}

// Copy returns a deep copy of the block.
func (b *Block) Copy() *Block {
	data := make([]float64, len(b.data))
	copy(data, b.data)
	return &Block{data: data, batch: b.batch, channels: b.channels, length: b.length}
}
