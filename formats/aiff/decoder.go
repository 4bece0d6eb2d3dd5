// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/utils"
)

const defaultBufSize = 4096

// pcmReader is the part of aiff.Decoder the source reads through.
type pcmReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source converts the signed integer frames of an AIFF sound chunk to
// float64 samples.
type source struct {
	pcm        pcmReader
	sampleRate int
	channels   int
	bitDepth   int
	ints       *goaudio.IntBuffer
}

func newSource(pcm pcmReader, bitDepth int) *source {
	format := pcm.Format()

	return &source{
		pcm:        pcm,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		bitDepth:   bitDepth,
		ints: &goaudio.IntBuffer{
			Data:           make([]int, defaultBufSize),
			Format:         format,
			SourceBitDepth: bitDepth,
		},
	}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return cap(s.ints.Data) }
func (s *source) Close() error    { return nil }

// ReadSamples fills whole frames only; a dst shorter than one frame reads
// nothing.
func (s *source) ReadSamples(dst []float64) (int, error) {
	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, nil
	}

	if cap(s.ints.Data) < want {
		s.ints.Data = make([]int, want)
	}
	s.ints.Data = s.ints.Data[:want]

	n, err := s.pcm.PCMBuffer(s.ints)
	switch {
	case n == 0 && (err == nil || errors.Is(err, io.EOF)):
		return 0, io.EOF
	case n == 0:
		return 0, fmt.Errorf("%w", err)
	}

	for i, v := range s.ints.Data[:n] {
		dst[i] = utils.PCMToFloat(v, s.bitDepth)
	}

	// a short chunk means the sound data is exhausted
	if err == nil && n < want {
		err = io.EOF
	}

	return n, err
}

// Decoder decodes PCM AIFF files of 8, 16, 24 or 32 bits.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := utils.AsReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	if depth := int(dec.BitDepth); !validBitDepth(depth) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, depth)
	}

	if f := dec.Format(); f == nil || f.NumChannels < 1 || f.SampleRate < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	return newSource(dec, int(dec.BitDepth)), nil
}

func validBitDepth(d int) bool {
	return d == 8 || d == 16 || d == 24 || d == 32
}
