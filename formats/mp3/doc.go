// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files through github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces interleaved stereo 16-bit PCM, so every Source from
// this package reports two channels; mono files come out duplicated on both.
// Samples are float64 in [-1, 1] and reads are always whole frames.
//
//	f, _ := os.Open("clip.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    ...
//	}
//	buf, err := audio.ReadBuffer(src)
//
// There is no encoder.
package mp3
