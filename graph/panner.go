// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/spatial"
)

// PannerNode places its input in the stereo field according to where its
// source sits relative to the context's listener, attenuated by distance and
// cone.
//
// The spatial setters (SetPosition, SetOrientation, SetConeOuterGain and the
// rest) are promoted from the embedded spatial.Source.
type PannerNode struct {
	AudioNode
	*spatial.Source

	listener spatial.ListenerView
	panner   *spatial.EqualPowerPanner

	// smoothing state at the start of the quantum last rendered
	mark      spatial.EqualPowerPanner
	markFrame int64
	marked    bool
}

// NewPanner returns a panner at the origin using the equal-power model.
func (ctx *Context) NewPanner() *PannerNode {
	p := &PannerNode{
		Source:   spatial.NewSource(),
		listener: ctx.listener,
		panner:   spatial.NewEqualPowerPanner(ctx.sampleRate),
	}
	p.init(ctx, nodeSpec{
		kind:          "panner",
		inputs:        1,
		outputs:       1,
		channels:      2,
		minChannels:   1,
		maxChannels:   2,
		mode:          ClampedMax,
		forbiddenMode: []ChannelCountMode{Max},
	}, p)

	return p
}

func (p *PannerNode) process(inputs []*audio.Block) (*audio.Block, error) {
	in := inputs[0]

	if p.marked && p.markFrame == p.ctx.frame {
		*p.panner = p.mark
	} else {
		p.mark, p.markFrame, p.marked = *p.panner, p.ctx.frame, true
	}

	az, el := p.AzimuthElevation(p.listener)

	dist, cone, err := p.Gains(p.listener)
	if err != nil {
		return nil, err
	}

	out := p.ctx.newBlock(2)
	if err := p.panner.Pan(az, el, in, out); err != nil {
		return nil, err
	}

	// recomputed from the geometry every quantum; not smoothed across quanta
	out.Scale(dist * cone)

	return out, nil
}

// Teardown also resets the panning gains.
func (p *PannerNode) Teardown() {
	p.AudioNode.Teardown()
	p.panner.Reset()
	p.marked = false
}
