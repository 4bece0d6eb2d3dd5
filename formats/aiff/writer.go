// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/utils"
)

// Writer is an audio.Sink that encodes rendered blocks as PCM AIFF.
type Writer struct {
	enc      *aiff.Encoder
	channels int
	bitDepth int

	interleaved []float64
	buf         *goaudio.IntBuffer
}

var _ audio.Sink = (*Writer)(nil)

// NewWriter starts an AIFF stream on w. The chunk sizes are written on Close,
// so w must seek.
func NewWriter(w io.WriteSeeker, sampleRate, channels, bitDepth int) (*Writer, error) {
	if sampleRate < 1 || channels < 1 {
		return nil, fmt.Errorf("%w: %d Hz, %d channels", ErrUnsupportedAiffLayout, sampleRate, channels)
	}

	if !validBitDepth(bitDepth) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	return &Writer{
		enc:      aiff.NewEncoder(w, sampleRate, bitDepth, channels),
		channels: channels,
		bitDepth: bitDepth,
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
			SourceBitDepth: bitDepth,
		},
	}, nil
}

func (w *Writer) WriteBlock(b *audio.Block) error {
	if b.Channels() != w.channels {
		return fmt.Errorf("%w: block has %d channels, stream has %d",
			ErrUnsupportedAiffLayout, b.Channels(), w.channels)
	}

	n := b.Channels() * b.Frames()
	if cap(w.interleaved) < n {
		w.interleaved = make([]float64, n)
		w.buf.Data = make([]int, n)
	}
	w.interleaved = w.interleaved[:n]
	w.buf.Data = w.buf.Data[:n]

	if _, err := b.Interleave(w.interleaved); err != nil {
		return fmt.Errorf("%w", err)
	}

	for i, v := range w.interleaved {
		w.buf.Data[i] = utils.FloatToPCM(v, w.bitDepth)
	}

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("writing aiff block: %w", err)
	}

	return nil
}

// Close finalizes the chunk headers. It does not close the underlying writer.
func (w *Writer) Close() error {
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("closing aiff stream: %w", err)
	}

	return nil
}
