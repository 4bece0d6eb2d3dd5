// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/utils"
)

// Writer is an audio.Sink that encodes rendered blocks as integer PCM WAV.
// The header sizes are patched on Close, so the destination must seek.
type Writer struct {
	enc      *wav.Encoder
	channels int
	bitDepth int
	frames   int

	interleaved []float64
	buf         *goaudio.IntBuffer
}

var _ audio.Sink = (*Writer)(nil)

// NewWriter starts a WAV stream on w. bitDepth is 8, 16, 24 or 32.
func NewWriter(w io.WriteSeeker, sampleRate, channels, bitDepth int) (*Writer, error) {
	if sampleRate < 1 || channels < 1 {
		return nil, fmt.Errorf("%w: %d Hz, %d channels", ErrUnsupportedWavLayout, sampleRate, channels)
	}

	if !validBitDepth(bitDepth) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	return &Writer{
		enc:      wav.NewEncoder(w, sampleRate, bitDepth, channels, formatPCM),
		channels: channels,
		bitDepth: bitDepth,
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
			SourceBitDepth: bitDepth,
		},
	}, nil
}

// Frames reports how many frames have been written.
func (w *Writer) Frames() int { return w.frames }

// WriteBlock appends b. Its channel count must match the writer's.
func (w *Writer) WriteBlock(b *audio.Block) error {
	if b.Channels() != w.channels {
		return fmt.Errorf("%w: block has %d channels, stream has %d",
			ErrUnsupportedWavLayout, b.Channels(), w.channels)
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

	// 8-bit WAV is unsigned, centered on 128
	offset := 0
	if w.bitDepth == 8 {
		offset = 128
	}

	for i, v := range w.interleaved {
		w.buf.Data[i] = utils.FloatToPCM(v, w.bitDepth) + offset
	}

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("writing wav block: %w", err)
	}
	w.frames += b.Frames()

	return nil
}

// Close finalizes the header. It does not close the underlying writer.
func (w *Writer) Close() error {
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("closing wav stream: %w", err)
	}

	return nil
}
