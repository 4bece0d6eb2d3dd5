// SPDX-License-Identifier: EPL-2.0

package graph

import "github.com/ik5/audgraph/audio"

// MaxDestinationChannels is the widest layout a destination accepts.
const MaxDestinationChannels = 32

// DestinationNode is the terminal node of a context. Its single input is
// mixed to its channel count and handed to the driver unchanged.
type DestinationNode struct {
	AudioNode
}

func newDestination(ctx *Context) *DestinationNode {
	d := &DestinationNode{}
	d.init(ctx, nodeSpec{
		kind:        "destination",
		inputs:      1,
		outputs:     0,
		channels:    2,
		minChannels: 1,
		maxChannels: MaxDestinationChannels,
		mode:        Explicit,
	}, d)

	return d
}

func (d *DestinationNode) process(inputs []*audio.Block) (*audio.Block, error) {
	return inputs[0], nil
}
