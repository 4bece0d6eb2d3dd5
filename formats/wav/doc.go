// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes integer PCM WAV files.
//
// Decoding goes through github.com/go-audio/wav and accepts 8, 16, 24 and
// 32-bit PCM with any channel count. Samples come out as interleaved float64
// values in [-1, 1]:
//
//	f, _ := os.Open("clip.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    // ErrNotWavFile, ErrOnlyPCMSupported, ErrUnsupportedBitDepth...
//	}
//	buf, err := audio.ReadBuffer(src)
//
// # Writing
//
// Writer is an audio.Sink for rendered blocks. It needs an io.WriteSeeker
// because the header sizes are patched on Close:
//
//	f, _ := os.Create("out.wav")
//	w, _ := wav.NewWriter(f, 48000, 2, 16)
//	for ... {
//	    _ = w.WriteBlock(blk)
//	}
//	_ = w.Close()
//	_ = f.Close()
//
// WriteWAV16 writes a complete 16-bit file from interleaved int16 samples in
// one call and works with any io.Writer, stdout included.
package wav
