// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audgraph/audio"
)

// go-mp3 always emits interleaved stereo 16-bit little-endian PCM
const (
	channels       = 2
	bytesPerFrame  = channels * 2
	defaultBufSize = 8192
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 } // samples, not bytes

func (s *source) ReadSamples(dst []float64) (int, error) {
	frames := len(dst) / channels
	if frames == 0 {
		return 0, nil
	}

	bytesNeeded := frames * bytesPerFrame
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	// ReadFull keeps reads frame aligned across short decoder reads
	n, err := io.ReadFull(s.dec, s.buf)
	n -= n % bytesPerFrame

	samples := n / 2
	for i := range samples {
		dst[i] = float64(int16(binary.LittleEndian.Uint16(s.buf[2*i:]))) / 32768.0
	}

	switch {
	case err == nil:
		return samples, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return samples, io.EOF
	default:
		return samples, fmt.Errorf("%w", err)
	}
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, defaultBufSize),
	}, nil
}
