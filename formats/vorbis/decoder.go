// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audgraph/audio"
	"github.com/jfreymuth/oggvorbis"
)

const defaultBufSize = 4096

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	buf        []float32
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) }

// ReadSamples decodes whole frames only, so a dst shorter than one frame
// reads nothing.
func (s *source) ReadSamples(dst []float64) (int, error) {
	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, nil
	}

	if cap(s.buf) < want {
		s.buf = make([]float32, want)
	}
	s.buf = s.buf[:want]

	// Read returns the number of interleaved values decoded
	n, err := s.dec.Read(s.buf)
	for i, v := range s.buf[:n] {
		dst[i] = float64(v)
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("%w", err)
	}

	if n == 0 {
		return 0, io.EOF
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if dec.Channels() < 1 {
		return nil, audio.ErrInvalidChannels
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		buf:        make([]float32, defaultBufSize),
	}, nil
}
