// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"math"
	"testing"

	"github.com/ik5/audgraph/audio"
)

func newTestContext(opts ...Option) *Context {
	return NewContext(append([]Option{WithSampleRate(8), WithBlockSize(8)}, opts...)...)
}

func constant(t *testing.T, ctx *Context, v float64) *ConstantSourceNode {
	t.Helper()

	s := ctx.NewConstantSource()
	if err := s.Offset().SetValue(v); err != nil {
		t.Fatalf("SetValue(%v) error = %v", v, err)
	}

	return s
}

func mustConnect(t *testing.T, src, dst Node) {
	t.Helper()

	if err := src.node().Connect(dst, 0, 0); err != nil {
		t.Fatalf("Connect(%s -> %s) error = %v", src.node().Kind(), dst.node().Kind(), err)
	}
}

func render(t *testing.T, n Node) *audio.Block {
	t.Helper()

	blk, err := n.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	return blk
}

// flat asserts every sample of every channel equals want[channel].
func flat(t *testing.T, blk *audio.Block, want ...float64) {
	t.Helper()

	if blk.Channels() != len(want) {
		t.Fatalf("channels = %d, want %d", blk.Channels(), len(want))
	}

	for c, w := range want {
		for i, v := range blk.Channel(c) {
			if math.Abs(v-w) > 1e-12 {
				t.Fatalf("channel %d frame %d = %v, want %v", c, i, v, w)
			}
		}
	}
}

func equalBlocks(a, b *audio.Block) bool {
	if a.Channels() != b.Channels() || a.Frames() != b.Frames() {
		return false
	}

	for c := range a.Channels() {
		for i := range a.Frames() {
			if a.Channel(c)[i] != b.Channel(c)[i] {
				return false
			}
		}
	}

	return true
}

// countingNode passes its input through and counts renders.
type countingNode struct {
	AudioNode
	calls int
}

func newCountingNode(ctx *Context) *countingNode {
	n := &countingNode{}
	n.init(ctx, nodeSpec{
		kind:        "counter",
		inputs:      1,
		outputs:     1,
		channels:    1,
		minChannels: 1,
		maxChannels: 2,
		mode:        Max,
	}, n)

	return n
}

func (n *countingNode) process(inputs []*audio.Block) (*audio.Block, error) {
	n.calls++
	return inputs[0], nil
}
