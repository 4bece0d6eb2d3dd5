// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Block is one render quantum of planar audio: a fixed number of channels,
// each holding exactly Frames() samples, tagged with a sample rate.
//
// The shape never changes after NewBlock; only the sample values do. Whoever
// receives a Block from a render call owns it exclusively and may mutate it.
type Block struct {
	sampleRate float64
	data       [][]float64
}

// NewBlock allocates a silent block. It panics when channels or frames is
// less than one or sampleRate is not positive, the same way make panics on
// a negative length.
func NewBlock(channels, frames int, sampleRate float64) *Block {
	if channels < 1 || frames < 1 || !(sampleRate > 0) {
		panic(fmt.Sprintf("audio: invalid block shape %dx%d @ %v Hz", channels, frames, sampleRate))
	}

	// one backing array keeps the channels contiguous
	backing := make([]float64, channels*frames)
	data := make([][]float64, channels)
	for c := range data {
		data[c] = backing[c*frames : (c+1)*frames : (c+1)*frames]
	}

	return &Block{sampleRate: sampleRate, data: data}
}

func (b *Block) Channels() int       { return len(b.data) }
func (b *Block) Frames() int         { return len(b.data[0]) }
func (b *Block) SampleRate() float64 { return b.sampleRate }

// Channel returns the samples of channel c. The slice aliases the block.
func (b *Block) Channel(c int) []float64 {
	return b.data[c]
}

// Zero silences every channel.
func (b *Block) Zero() {
	b.Fill(0)
}

// Fill sets every sample of every channel to v.
func (b *Block) Fill(v float64) {
	for _, ch := range b.data {
		for i := range ch {
			ch[i] = v
		}
	}
}

// Scale multiplies every sample by g.
func (b *Block) Scale(g float64) {
	for _, ch := range b.data {
		vecmath.ScaleBlock(ch, ch, g)
	}
}

// Clone returns an independent copy with the same shape.
func (b *Block) Clone() *Block {
	out := NewBlock(b.Channels(), b.Frames(), b.sampleRate)
	for c, ch := range b.data {
		copy(out.data[c], ch)
	}

	return out
}

// Interleave writes the block frame by frame into dst and returns the number
// of values written. dst must hold Channels()*Frames() values.
func (b *Block) Interleave(dst []float64) (int, error) {
	channels := b.Channels()
	n := channels * b.Frames()
	if len(dst) < n {
		return 0, ErrShortBuffer
	}

	switch channels {
	case 1:
		copy(dst, b.data[0])
	case 2:
		left, right := b.data[0], b.data[1]
		for f := range left {
			idx := f << 1
			dst[idx] = left[f]
			dst[idx+1] = right[f]
		}
	default:
		for c, ch := range b.data {
			for f, v := range ch {
				dst[f*channels+c] = v
			}
		}
	}

	return n, nil
}
