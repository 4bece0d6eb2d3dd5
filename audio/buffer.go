// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// Buffer holds a fully decoded clip in planar layout. It is the storage a
// buffer source node plays from; decoding itself happens in the formats
// packages.
type Buffer struct {
	sampleRate float64
	data       [][]float64
}

// NewBuffer wraps planar channel data. All channels must have equal length.
func NewBuffer(sampleRate float64, channels ...[]float64) (*Buffer, error) {
	if len(channels) == 0 {
		return nil, ErrInvalidChannels
	}

	if !(sampleRate > 0) {
		return nil, fmt.Errorf("invalid sample rate %v", sampleRate)
	}

	n := len(channels[0])
	for c, ch := range channels {
		if len(ch) != n {
			return nil, fmt.Errorf("channel %d has %d samples, want %d", c, len(ch), n)
		}
	}

	return &Buffer{sampleRate: sampleRate, data: channels}, nil
}

func (b *Buffer) SampleRate() float64 { return b.sampleRate }
func (b *Buffer) Channels() int       { return len(b.data) }
func (b *Buffer) Length() int         { return len(b.data[0]) }

// Duration returns the clip length in seconds.
func (b *Buffer) Duration() float64 {
	return float64(b.Length()) / b.sampleRate
}

// Channel returns the samples of channel c. The slice aliases the buffer.
func (b *Buffer) Channel(c int) []float64 {
	return b.data[c]
}

// ReadBuffer drains src into a Buffer. src is not closed.
func ReadBuffer(src Source) (*Buffer, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, ErrInvalidChannels
	}

	bufSize := src.BufSize()
	if bufSize < channels {
		bufSize = 4096
	}
	// keep reads frame aligned
	bufSize -= bufSize % channels

	tmp := make([]float64, bufSize)
	data := make([][]float64, channels)

	for {
		n, err := src.ReadSamples(tmp)
		frames := n / channels
		for c := range channels {
			for f := range frames {
				data[c] = append(data[c], tmp[f*channels+c])
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		if n == 0 {
			// a source that makes no progress without EOF is treated as done
			break
		}
	}

	if len(data[0]) == 0 {
		return nil, ErrEmptySource
	}

	return &Buffer{sampleRate: float64(src.SampleRate()), data: data}, nil
}
