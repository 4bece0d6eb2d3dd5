// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
)

// mockSource is a test helper that generates interleaved audio data.
// It implements the Source interface and can generate various waveforms.
type mockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	maxRead      int // Caps the values returned per call, 0 means no cap
	waveform     func(sample int, channel int) float64
}

func newMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float64) *mockSource {
	return &mockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// newRampSource yields sample index + channel/10 so tests can check placement.
func newRampSource(sampleRate, channels, totalSamples int) *mockSource {
	return newMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float64 {
		return float64(sample) + float64(channel)/10
	})
}

func newConstantSource(sampleRate, channels, totalSamples int, value float64) *mockSource {
	return newMockSource(sampleRate, channels, totalSamples, func(int, int) float64 {
		return value
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return 4096 }
func (m *mockSource) Close() error    { return nil }

func (m *mockSource) ReadSamples(dst []float64) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	if m.maxRead > 0 && len(dst) > m.maxRead {
		dst = dst[:m.maxRead]
	}

	framesToWrite := min(len(dst)/m.channels, m.totalSamples-m.generated)

	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}
