// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// header is the canonical 44-byte RIFF/WAVE header of a PCM file with a
// single fmt chunk followed by the data chunk.
type header struct {
	RIFF          [4]byte
	RIFFSize      uint32
	WAVE          [4]byte
	Fmt           [4]byte
	FmtSize       uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Data          [4]byte
	DataSize      uint32
}

const (
	headerSize  = 44
	writeChunk  = 8192
	bytesPerS16 = 2
)

func newHeader16(sampleRate, channels, samples int) header {
	align := uint16(channels * bytesPerS16)
	dataSize := uint32(samples * bytesPerS16)

	return header{
		RIFF:          [4]byte{'R', 'I', 'F', 'F'},
		RIFFSize:      headerSize - 8 + dataSize,
		WAVE:          [4]byte{'W', 'A', 'V', 'E'},
		Fmt:           [4]byte{'f', 'm', 't', ' '},
		FmtSize:       16,
		AudioFormat:   formatPCM,
		NumChannels:   uint16(channels),
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate) * uint32(align),
		BlockAlign:    align,
		BitsPerSample: 16,
		Data:          [4]byte{'d', 'a', 't', 'a'},
		DataSize:      dataSize,
	}
}

// WriteWAV16 writes a 16-bit PCM WAV at sampleRate. samples are interleaved
// int16 frames of the given channel count. w does not need to seek, so the
// header is written up front from len(samples).
func WriteWAV16(w io.Writer, sampleRate, channels int, samples []int16) error {
	if sampleRate < 1 || channels < 1 || len(samples)%channels != 0 {
		return fmt.Errorf("%w: %d Hz, %d channels, %d samples",
			ErrUnsupportedWavLayout, sampleRate, channels, len(samples))
	}

	if err := binary.Write(w, binary.LittleEndian, newHeader16(sampleRate, channels, len(samples))); err != nil {
		return fmt.Errorf("writing wav header: %w", err)
	}

	buf := make([]byte, 0, min(len(samples), writeChunk)*bytesPerS16)
	for len(samples) > 0 {
		n := min(len(samples), writeChunk)

		buf = buf[:0]
		for _, s := range samples[:n] {
			buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("writing wav data: %w", err)
		}
		samples = samples[n:]
	}

	return nil
}
