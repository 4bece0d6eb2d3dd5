// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample containers and stream contracts the
// render graph is built on.
//
// This package contains:
//   - Block, one render quantum of planar float64 samples
//   - Buffer, a fully decoded clip for buffer source nodes
//   - MixInto, the speaker and discrete channel up/down-mix rules
//   - Source, Decoder and Registry for the format decoders
//   - BlockReader for cutting an interleaved Source into Blocks
//   - MonoMixer for averaging a multi-channel Source into one channel
//   - Sink, the contract for whatever consumes rendered blocks
//
// # Blocks
//
// A Block has a fixed shape: channel count, frame count and sample rate are
// set by NewBlock and never change. Samples live in one slice per channel:
//
//	b := audio.NewBlock(2, 128, 44100)
//	left := b.Channel(0)
//	left[0] = 0.5
//
// Every render call hands back a fresh Block that the caller owns.
//
// # Channel Mixing
//
// MixInto accumulates one block into another of a possibly different channel
// count:
//
//	out := audio.NewBlock(1, 128, 44100)
//	audio.MixInto(out, stereo, audio.Speakers) // out = 0.5 * (L + R)
//
// Speakers follows the usual mono, stereo, quad and 5.1 rules. Discrete
// copies channel by channel, padding with silence or dropping extra
// channels.
//
// # Decoding
//
// The registry allows dynamic decoder registration, and DecodeFile decodes a
// whole file into a Buffer:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	clip, err := registry.DecodeFile("voice.wav")
//
// Open returns the stream instead, so it can be wrapped before buffering:
//
//	src, err := registry.Open("music.mp3")
//	clip, err := audio.ReadBuffer(audio.NewMonoMixer(src))
//
// # Sample Format
//
// Audio samples are float64 with a nominal range of [-1.0, 1.0]. Intermediate
// values may exceed that range; sinks clamp when converting to integer PCM.
//
// # Error Handling
//
// Stream reads return io.EOF when no more data is available. Other errors
// indicate problems with the source and are wrapped with %w.
package audio
