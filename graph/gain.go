// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/automation"
)

// GainNode multiplies its input by the sample-accurate gain parameter.
type GainNode struct {
	AudioNode
	gain *automation.Param
}

// NewGain returns a gain node with unity gain.
func (ctx *Context) NewGain() *GainNode {
	g := &GainNode{}
	g.init(ctx, nodeSpec{
		kind:        "gain",
		inputs:      1,
		outputs:     1,
		channels:    2,
		minChannels: 1,
		maxChannels: MaxDestinationChannels,
		mode:        Max,
	}, g)
	g.gain = ctx.newParam(&g.AudioNode, "gain", 1, automation.SampleAccurate)

	return g
}

// Gain returns the gain parameter.
func (g *GainNode) Gain() *automation.Param { return g.gain }

func (g *GainNode) process(inputs []*audio.Block) (*audio.Block, error) {
	gain, err := g.gain.Render()
	if err != nil {
		return nil, err
	}

	out := inputs[0]
	for c := range out.Channels() {
		vecmath.MulBlockInPlace(out.Channel(c), gain.Channel(0))
	}

	return out, nil
}
