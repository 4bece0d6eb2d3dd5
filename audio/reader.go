// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// BlockReader cuts an interleaved Source into planar Blocks of a fixed frame
// count, the shape the render graph works with.
type BlockReader struct {
	src    Source
	frames int
	tmp    []float64
	eof    bool
}

func NewBlockReader(src Source, frames int) *BlockReader {
	return &BlockReader{
		src:    src,
		frames: frames,
		tmp:    make([]float64, 4096),
	}
}

func (r *BlockReader) SampleRate() int { return r.src.SampleRate() }
func (r *BlockReader) Channels() int   { return r.src.Channels() }
func (r *BlockReader) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadBlock returns the next block. A short tail is zero padded. Once the
// source is exhausted ReadBlock returns (nil, io.EOF).
func (r *BlockReader) ReadBlock() (*Block, error) {
	if r.eof {
		return nil, io.EOF
	}

	channels := r.src.Channels()
	if channels < 1 {
		return nil, ErrInvalidChannels
	}
	samplesNeeded := r.frames * channels

	// Grow tmp buffer if needed (but don't shrink to avoid thrashing)
	if cap(r.tmp) < samplesNeeded {
		r.tmp = make([]float64, samplesNeeded)
	} else if len(r.tmp) < samplesNeeded {
		r.tmp = r.tmp[:samplesNeeded]
	}

	// Sources may return short reads before EOF, so keep filling.
	filled := 0
	for filled < samplesNeeded {
		n, err := r.src.ReadSamples(r.tmp[filled:samplesNeeded])
		filled += n

		if errors.Is(err, io.EOF) {
			r.eof = true
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		if n == 0 {
			r.eof = true
			break
		}
	}

	frames := filled / channels
	if frames == 0 {
		return nil, io.EOF
	}

	blk := NewBlock(channels, r.frames, float64(r.src.SampleRate()))

	switch channels {
	case 1:
		copy(blk.data[0], r.tmp[:frames])
	case 2: // Stereo (most common)
		left, right := blk.data[0], blk.data[1]
		for f := range frames {
			idx := f << 1
			left[f] = r.tmp[idx]
			right[f] = r.tmp[idx+1]
		}
	default:
		for f := range frames {
			base := f * channels
			for c := range channels {
				blk.data[c][f] = r.tmp[base+c]
			}
		}
	}

	return blk, nil
}
