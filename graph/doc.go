// SPDX-License-Identifier: EPL-2.0

// Package graph is a pull-based audio render graph.
//
// A Context owns the clock and a destination node. Nodes created from the
// context are wired with Connect; the driver calls RenderQuantum once per
// block period, which renders the destination and advances the clock:
//
//	ctx := graph.NewContext(graph.WithSampleRate(48000))
//	src := ctx.NewBufferSource()
//	_ = src.SetBuffer(clip)
//	_ = src.Start(0)
//
//	panner := ctx.NewPanner()
//	_ = panner.SetPosition(3, 0, -1)
//
//	_ = src.Connect(panner, 0, 0)
//	_ = panner.Connect(ctx.Destination(), 0, 0)
//
//	for range blocks {
//	    blk, err := ctx.RenderQuantum()
//	    ...
//	}
//
// # Rendering
//
// Rendering a node renders everything connected to its inputs first, mixes
// each input to the channel count given by the node's ChannelCountMode and
// channel interpretation, then applies the node's own processing. Every
// Render returns a new block owned by the caller.
//
// Without WithRenderCache a node feeding several consumers is rendered once
// per consumer. Sources with playback state reproduce the same block when
// rendered again within a quantum, so the result is the same either way; the
// cache only saves the work.
//
// # Lifecycle
//
// Teardown severs every connection of a node and clears its parameters.
// Any later Render of that node fails with errs.ErrDestroyed.
package graph
