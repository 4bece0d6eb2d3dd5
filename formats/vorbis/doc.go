// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files through github.com/jfreymuth/oggvorbis.
//
// The channel count and sample rate come from the stream header. Vorbis
// decodes to float natively, so samples are passed through unscaled apart
// from widening to float64. Reads are always whole frames:
//
//	f, _ := os.Open("clip.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    ...
//	}
//	blocks := audio.NewBlockReader(src, 128)
//
// There is no encoder.
package vorbis
