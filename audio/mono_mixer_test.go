// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"testing"
)

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	// Mono input should pass through unchanged
	src := newConstantSource(8000, 1, 100, 0.5)
	mixer := NewMonoMixer(src)

	if mixer.Channels() != 1 {
		t.Errorf("MonoMixer.Channels() = %d, want 1", mixer.Channels())
	}

	buf := make([]float64, 10)
	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 10 {
		t.Errorf("ReadSamples() n = %d, want 10", n)
	}

	for i := range n {
		if buf[i] != 0.5 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestMonoMixer_Average(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		want     float64
	}{
		{"stereo", 2, 0.05},
		{"triple", 3, 0.1},
		{"quad", 4, 0.15},
		{"octo", 8, 0.35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// channel c carries c/10
			src := newMockSource(8000, tt.channels, 100, func(_ int, channel int) float64 {
				return float64(channel) / 10
			})
			mixer := NewMonoMixer(src)

			buf := make([]float64, 10)
			n, err := mixer.ReadSamples(buf)
			if err != nil {
				t.Fatalf("ReadSamples() error = %v", err)
			}

			if n != 10 {
				t.Fatalf("ReadSamples() n = %d, want 10", n)
			}

			for i := range n {
				if math.Abs(buf[i]-tt.want) > 1e-12 {
					t.Errorf("buf[%d] = %v, want %v", i, buf[i], tt.want)
				}
			}
		})
	}
}

func TestMonoMixer_EOF(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 2, 5, 0)
	mixer := NewMonoMixer(src)

	buf := make([]float64, 10)
	n, err := mixer.ReadSamples(buf)

	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}

	if n != 5 {
		t.Errorf("ReadSamples() n = %d, want 5", n)
	}

	n, err = mixer.ReadSamples(buf)
	if err != io.EOF {
		t.Errorf("Second ReadSamples() error = %v, want io.EOF", err)
	}

	if n != 0 {
		t.Errorf("Second ReadSamples() n = %d, want 0", n)
	}
}

func TestMonoMixer_EmptyBuffer(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(newConstantSource(8000, 2, 100, 0))

	n, err := mixer.ReadSamples(nil)
	if err != nil || n != 0 {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
}

func TestMonoMixer_NoChannels(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(newConstantSource(8000, 0, 100, 0))

	if _, err := mixer.ReadSamples(make([]float64, 4)); err != ErrInvalidChannels {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidChannels", err)
	}
}

func TestMonoMixer_PreservesMetadata(t *testing.T) {
	t.Parallel()

	src := newConstantSource(44100, 2, 100, 0)
	mixer := NewMonoMixer(src)

	if mixer.SampleRate() != 44100 {
		t.Errorf("MonoMixer.SampleRate() = %d, want 44100", mixer.SampleRate())
	}

	if mixer.BufSize() != src.BufSize() {
		t.Errorf("MonoMixer.BufSize() = %d, want %d", mixer.BufSize(), src.BufSize())
	}

	if err := mixer.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func TestMonoMixer_LargeBuffer(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(newConstantSource(8000, 2, 8000, 0.25))

	// larger than the preallocated scratch space
	buf := make([]float64, 16384)
	n, err := mixer.ReadSamples(buf)

	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}

	if n != 8000 {
		t.Errorf("ReadSamples() n = %d, want 8000", n)
	}
}

func TestMonoMixer_SmallReads(t *testing.T) {
	t.Parallel()

	src := newRampSource(8000, 2, 12)
	src.maxRead = 4
	mixer := NewMonoMixer(src)

	var got []float64
	buf := make([]float64, 5)
	for {
		n, err := mixer.ReadSamples(buf)
		got = append(got, buf[:n]...)

		if err == io.EOF {
			break
		}

		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != 12 {
		t.Fatalf("read %d frames, want 12", len(got))
	}

	// frame f averages f and f+0.1
	for f, v := range got {
		if want := float64(f) + 0.05; math.Abs(v-want) > 1e-12 {
			t.Errorf("frame %d = %v, want %v", f, v, want)
		}
	}
}

func TestMonoMixer_ReadBuffer(t *testing.T) {
	t.Parallel()

	buf, err := ReadBuffer(NewMonoMixer(newConstantSource(8000, 2, 300, 0.5)))
	if err != nil {
		t.Fatal(err)
	}

	if buf.Channels() != 1 || buf.Length() != 300 {
		t.Errorf("buffer shape = %dx%d, want 1x300", buf.Channels(), buf.Length())
	}
}

func BenchmarkMonoMixer_StereoToMono(b *testing.B) {
	buf := make([]float64, 4096)

	b.ReportAllocs()

	for b.Loop() {
		mixer := NewMonoMixer(newConstantSource(8000, 2, 100000, 0.5))
		for {
			_, err := mixer.ReadSamples(buf)
			if err == io.EOF {
				break
			}
		}
	}
}

func BenchmarkMonoMixer_ManyChannels(b *testing.B) {
	buf := make([]float64, 4096)

	b.ReportAllocs()

	for b.Loop() {
		mixer := NewMonoMixer(newConstantSource(8000, 16, 100000, 0.0625))
		for {
			_, err := mixer.ReadSamples(buf)
			if err == io.EOF {
				break
			}
		}
	}
}
