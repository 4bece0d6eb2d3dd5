// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// fakePCM serves fixed integer samples.
type fakePCM struct {
	rate, channels int
	data           []int
	pos            int
	err            error
}

func (f *fakePCM) Format() *goaudio.Format {
	return &goaudio.Format{SampleRate: f.rate, NumChannels: f.channels}
}

func (f *fakePCM) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.err != nil {
		return 0, f.err
	}

	n := copy(buf.Data, f.data[f.pos:])
	f.pos += n

	return n, nil
}

func drain(t *testing.T, s *source, bufLen int) []float64 {
	t.Helper()

	var out []float64
	dst := make([]float64, bufLen)
	for range 1000 {
		n, err := s.ReadSamples(dst)
		out = append(out, dst[:n]...)

		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	t.Fatal("source never reached EOF")
	return nil
}

func TestDecoder_Rejects(t *testing.T) {
	t.Parallel()

	for name, data := range map[string][]byte{
		"empty": {},
		"text":  []byte("This is not AIFF data"),
		"wav":   []byte("RIFF\x24\x00\x00\x00WAVEfmt "),
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(data)); !errors.Is(err, ErrNotAiffFile) {
				t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
			}
		})
	}
}

func TestSource_Shape(t *testing.T) {
	t.Parallel()

	s := newSource(&fakePCM{rate: 22050, channels: 2}, 16)

	if s.SampleRate() != 22050 || s.Channels() != 2 {
		t.Errorf("shape = %d Hz, %d ch, want 22050 Hz, 2 ch", s.SampleRate(), s.Channels())
	}

	if s.BufSize() != defaultBufSize {
		t.Errorf("BufSize() = %d, want %d", s.BufSize(), defaultBufSize)
	}

	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_Normalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bitDepth int
		in       int
		want     float64
	}{
		{8, 127, 127.0 / 128},
		{8, -128, -1},
		{16, 16384, 0.5},
		{16, -32768, -1},
		{24, 8388607, 8388607.0 / 8388608},
		{24, -4194304, -0.5},
		{32, 2147483647, 2147483647.0 / 2147483648},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d-bit %d", tt.bitDepth, tt.in), func(t *testing.T) {
			t.Parallel()

			s := newSource(&fakePCM{rate: 8000, channels: 1, data: []int{tt.in}}, tt.bitDepth)
			got := drain(t, s, 4)

			if len(got) != 1 || math.Abs(got[0]-tt.want) > 1e-12 {
				t.Errorf("samples = %v, want [%v]", got, tt.want)
			}
		})
	}
}

func TestSource_FrameAligned(t *testing.T) {
	t.Parallel()

	data := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	s := newSource(&fakePCM{rate: 8000, channels: 3, data: data}, 8)

	// a buffer shorter than one frame reads nothing
	if n, err := s.ReadSamples(make([]float64, 2)); n != 0 || err != nil {
		t.Fatalf("ReadSamples(2) = %d, %v, want 0, nil", n, err)
	}

	got := drain(t, s, 7)
	if len(got) != len(data) {
		t.Fatalf("read %d values, want %d", len(got), len(data))
	}

	for i, v := range got {
		if want := float64(data[i]) / 128; v != want {
			t.Errorf("value %d = %v, want %v", i, v, want)
		}
	}

	if n, err := s.ReadSamples(make([]float64, 3)); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = %d, %v, want 0, io.EOF", n, err)
	}
}

func TestSource_Errors(t *testing.T) {
	t.Parallel()

	s := newSource(&fakePCM{rate: 8000, channels: 1, err: io.ErrUnexpectedEOF}, 16)

	n, err := s.ReadSamples(make([]float64, 4))
	if n != 0 || !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() = %d, %v, want 0, wrapped io.ErrUnexpectedEOF", n, err)
	}

	// EOF from the reader is passed through unwrapped
	s = newSource(&fakePCM{rate: 8000, channels: 1, err: io.EOF}, 16)
	if _, err := s.ReadSamples(make([]float64, 4)); err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
}

func TestSource_GrowsBuffer(t *testing.T) {
	t.Parallel()

	data := make([]int, 3*defaultBufSize)
	s := newSource(&fakePCM{rate: 8000, channels: 1, data: data}, 16)

	n, err := s.ReadSamples(make([]float64, len(data)))
	if n != len(data) || err != nil {
		t.Fatalf("ReadSamples() = %d, %v, want %d, nil", n, err, len(data))
	}

	if s.BufSize() < len(data) {
		t.Errorf("BufSize() = %d after a large read", s.BufSize())
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err     error
		message string
	}{
		{ErrNotAiffFile, "not an AIFF file"},
		{ErrUnsupportedBitDepth, "unsupported AIFF bit depth"},
		{ErrUnsupportedAiffLayout, "unsupported AIFF layout"},
	}

	for i, tt := range tests {
		if tt.err.Error() != tt.message {
			t.Errorf("Error message = %q, want %q", tt.err.Error(), tt.message)
		}

		wrapped := fmt.Errorf("decoding: %w", tt.err)
		for j, other := range tests {
			if got := errors.Is(wrapped, other.err); got != (i == j) {
				t.Errorf("errors.Is(wrap(%v), %v) = %v", tt.err, other.err, got)
			}
		}
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	data := make([]int, 2*44100)
	for i := range data {
		data[i] = (i % 65536) - 32768
	}
	dst := make([]float64, 4096)

	b.ReportAllocs()

	for b.Loop() {
		s := newSource(&fakePCM{rate: 44100, channels: 2, data: data}, 16)
		for {
			_, err := s.ReadSamples(dst)
			if err != nil {
				break
			}
		}
	}
}
