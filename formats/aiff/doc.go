// SPDX-License-Identifier: EPL-2.0

// Package aiff reads and writes AIFF (Audio Interchange File Format) files
// through github.com/go-audio/aiff.
//
// The Decoder accepts 8, 16, 24 and 32-bit PCM with any channel count and
// produces interleaved float64 samples in [-1, 1]. Input that cannot seek is
// buffered in memory first.
//
//	f, _ := os.Open("clip.aiff")
//	src, err := aiff.Decoder{}.Decode(f)
//	if errors.Is(err, aiff.ErrUnsupportedBitDepth) {
//	    ...
//	}
//
// Writer is an audio.Sink that encodes rendered blocks. Like the WAV writer
// it patches chunk sizes on Close and therefore needs an io.WriteSeeker.
package aiff
