// SPDX-License-Identifier: EPL-2.0

// Package audgraph ties the render graph to files and offline output.
//
// The engine itself lives in the subpackages:
//   - graph: the Context, nodes and the pull scheduler
//   - automation: sample-accurate parameter automation
//   - spatial: distance and cone attenuation, equal-power panning
//   - audio: blocks, buffers, channel mixing and the Source/Sink contracts
//   - formats/...: WAV, AIFF, MP3 and Ogg Vorbis decoders, WAV and AIFF sinks
//
// This package adds the driver side: a registry with every bundled decoder
// and helpers that run a context for a number of quanta into a sink.
//
//	reg := audgraph.NewRegistry()
//	clip, err := reg.DecodeFile("voice.ogg")
//	...
//	ctx := graph.NewContext(graph.WithSampleRate(clip.SampleRate()))
//	src := ctx.NewBufferSource()
//	_ = src.SetBuffer(clip)
//	_ = src.Connect(ctx.Destination(), 0, 0)
//	_ = src.Start(0)
//
//	f, _ := os.Create("out.wav")
//	w, _ := wav.NewWriter(f, int(ctx.SampleRate()), 2, 16)
//	err = audgraph.Render(ctx, audgraph.Quanta(ctx, clip.Duration()), w)
//	_ = w.Close()
//
// Rendering is single threaded and never resamples: decoded clips must match
// the context's sample rate.
package audgraph
